package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	FootprintLogs = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ecotrack_footprint_logs_total",
			Help: "Number of daily activity logs persisted",
		},
	)

	DailyEmissions = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecotrack_daily_emissions_kg",
			Help:    "Distribution of logged daily emissions by category (kg CO2e)",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 15, 25, 50},
		},
		[]string{"category"},
	)

	ChallengeJoins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecotrack_challenge_joins_total",
			Help: "Number of challenge join attempts by result",
		},
		[]string{"result"},
	)

	LeaderboardCache = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecotrack_leaderboard_cache_total",
			Help: "Leaderboard cache lookups by result",
		},
		[]string{"result"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestCounter,
			RequestDuration,
			FootprintLogs,
			DailyEmissions,
			ChallengeJoins,
			LeaderboardCache,
		)
	})
}

// ObserveFootprint 记录一次入库的各类排放
func ObserveFootprint(transportation, meals, digital, total float64) {
	FootprintLogs.Inc()
	DailyEmissions.WithLabelValues("transportation").Observe(transportation)
	DailyEmissions.WithLabelValues("meal").Observe(meals)
	DailyEmissions.WithLabelValues("digital").Observe(digital)
	DailyEmissions.WithLabelValues("total").Observe(total)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
