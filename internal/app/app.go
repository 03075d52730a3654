package app

import (
	"context"
	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/controller"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/configwatcher"
	"ecotrack_backend/pkg/database"
	"ecotrack_backend/pkg/events"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"ecotrack_backend/pkg/security"
	"ecotrack_backend/pkg/tracing"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config     *config.Config
	ConfigFile string
	Router     *gin.Engine
	DB         *gorm.DB
	Redis      *redis.Client

	repos          *repositories
	publisher      events.Publisher
	allowList      *security.OriginAllowList
	tracerProvider *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user        *repository.UserRepository
	dailyLog    *repository.DailyLogRepository
	challenge   *repository.ChallengeRepository
	leaderboard *repository.LeaderboardCache
}

type services struct {
	auth        *service.AuthService
	storage     *service.StorageService
	carbon      *service.CarbonService
	leaderboard *service.LeaderboardService
	challenge   *service.ChallengeService
}

type controllers struct {
	user        *controller.UserController
	carbon      *controller.CarbonController
	leaderboard *controller.LeaderboardController
	challenge   *controller.ChallengeController
	health      *controller.HealthController
}

// RegisterConfigCallback 配置文件热更新后依次回调
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := make([]func(*config.Config), len(a.configCallbacks))
	copy(callbacks, a.configCallbacks)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	return &repositories{
		user:        repository.NewUserRepository(db),
		dailyLog:    repository.NewDailyLogRepository(db),
		challenge:   repository.NewChallengeRepository(db),
		leaderboard: repository.NewLeaderboardCache(rdb, cfg.Leaderboard.CacheTTL()),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB) *services {
	s := &services{}

	s.storage = service.NewStorageService(&cfg.Storage)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.carbon = service.NewCarbonService(db, repos.user, repos.dailyLog, repos.leaderboard, a.publisher, s.storage)
	s.leaderboard = service.NewLeaderboardService(repos.user, repos.leaderboard)
	s.challenge = service.NewChallengeService(repos.challenge, repos.user, repos.leaderboard, a.publisher)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		user:        controller.NewUserController(s.auth),
		carbon:      controller.NewCarbonController(s.carbon),
		leaderboard: controller.NewLeaderboardController(s.leaderboard),
		challenge:   controller.NewChallengeController(s.challenge),
		health:      controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.allowList))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func newPublisher(cfg *config.KafkaConfig) events.Publisher {
	if !cfg.Enabled {
		return events.NopPublisher{}
	}
	logger.Log.Info("Kafka publisher enabled", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return events.NewKafkaPublisher(cfg.Brokers, cfg.Topic)
}

// NewApp 初始化依赖；cfg.MigrateOnly 为 true 时迁移完成即返回，不注册路由
func NewApp(cfg *config.Config, configFile string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if cfg.ForceMigrate || cfg.Server.Mode != gin.ReleaseMode {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		logger.Log.Info("Database migrated")
	}

	app := &App{
		Config:     cfg,
		ConfigFile: configFile,
		DB:         db,
	}
	if cfg.MigrateOnly {
		return app, nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}
	app.Redis = rdb
	app.publisher = newPublisher(&cfg.Kafka)
	app.allowList = security.NewOriginAllowList(cfg.CORS.AllowedOrigins)

	repos := app.initRepositories(db, rdb, cfg)
	app.repos = repos
	services := app.initServices(repos, cfg, db)
	controllers := app.initControllers(services, db, rdb)

	// CORS 白名单、排行榜缓存时间与日志级别支持热更新
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.allowList.Set(newCfg.CORS.AllowedOrigins)
	})
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		if err := logger.SetLevel(newCfg.Log.Level, newCfg.Server.Mode); err != nil {
			logger.Log.Warn("Ignoring log level change", zap.Error(err))
		}
	})
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		repos.leaderboard.SetTTL(newCfg.Leaderboard.CacheTTL())
	})

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint, cfg.Tracing.SampleRatio)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracerProvider = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app, nil
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if a.ConfigFile != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.ConfigFile, a.applyConfig); err != nil && !errors.Is(err, context.Canceled) {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
	return nil
}

// Close 释放外部连接
func (a *App) Close(ctx context.Context) {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			logger.Log.Warn("Failed to close event publisher", zap.Error(err))
		}
	}
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}
	logger.Log.Sync()
}
