package service

import (
	"bytes"
	"context"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/carbon"
	"ecotrack_backend/pkg/events"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"ecotrack_backend/pkg/ranking"
	"ecotrack_backend/pkg/tracing"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type CarbonService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	LogRepo   *repository.DailyLogRepository
	Cache     *repository.LeaderboardCache
	Publisher events.Publisher
	Storage   *StorageService
	now       func() time.Time
}

func NewCarbonService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	logRepo *repository.DailyLogRepository,
	cache *repository.LeaderboardCache,
	publisher events.Publisher,
	storage *StorageService,
) *CarbonService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CarbonService{
		DB:        db,
		UserRepo:  userRepo,
		LogRepo:   logRepo,
		Cache:     cache,
		Publisher: publisher,
		Storage:   storage,
		now:       time.Now,
	}
}

// FootprintPreview 只计算不入库
type FootprintPreview struct {
	Footprint           carbon.Footprint `json:"footprint"`
	SustainabilityScore int              `json:"sustainabilityScore"`
}

type LogResult struct {
	DailyLog            *model.DailyLog  `json:"dailyLog"`
	Footprint           carbon.Footprint `json:"footprint"`
	SustainabilityScore int              `json:"sustainabilityScore"`
}

type HistorySummary struct {
	TotalLogs             int     `json:"totalLogs"`
	AverageDailyEmissions float64 `json:"averageDailyEmissions"`
}

type History struct {
	Days    int              `json:"days"`
	Logs    []model.DailyLog `json:"logs"`
	Summary HistorySummary   `json:"summary"`
}

type StatsUser struct {
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Points     int    `json:"points"`
	DailyScore int    `json:"dailyScore"`
}

type Statistics struct {
	TotalCarbonFootprint  float64            `json:"totalCarbonFootprint"`
	TotalDaysLogged       int                `json:"totalDaysLogged"`
	AverageDailyEmissions float64            `json:"averageDailyEmissions"`
	LowestEmissionDay     float64            `json:"lowestEmissionDay"`
	HighestEmissionDay    float64            `json:"highestEmissionDay"`
	Equivalent            carbon.Equivalency `json:"equivalent"`
}

type Stats struct {
	User       StatsUser  `json:"user"`
	Statistics Statistics `json:"statistics"`
}

func (s *CarbonService) Preview(record carbon.ActivityRecord) (*FootprintPreview, error) {
	if err := carbon.Validate(record); err != nil {
		return nil, err
	}
	footprint := carbon.DailyFootprint(record)
	return &FootprintPreview{
		Footprint:           footprint,
		SustainabilityScore: carbon.SustainabilityScore(footprint.TotalEmissions),
	}, nil
}

// LogDailyActivity 计算并保存一次提交，日志写入与用户累计在同一事务内完成
func (s *CarbonService) LogDailyActivity(ctx context.Context, userID uint, record carbon.ActivityRecord) (*LogResult, error) {
	ctx, span := tracing.Tracer.Start(ctx, "CarbonService.LogDailyActivity")
	defer span.End()
	span.SetAttributes(attribute.Int64("user.id", int64(userID)))

	if err := carbon.Validate(record); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	footprint := carbon.DailyFootprint(record)
	score := carbon.SustainabilityScore(footprint.TotalEmissions)

	meals := record.Meals
	if meals == nil {
		meals = []carbon.Meal{}
	}
	dailyLog := &model.DailyLog{
		UserID:                  userID,
		Date:                    s.now(),
		Transportation:          record.Transportation,
		Meals:                   meals,
		DigitalWaste:            record.DigitalWaste,
		TransportationEmissions: footprint.TransportationEmissions,
		MealEmissions:           footprint.MealEmissions,
		DigitalEmissions:        footprint.DigitalEmissions,
		TotalCarbonForDay:       footprint.TotalEmissions,
		SustainabilityScore:     score,
		ChallengesCompleted:     []string{},
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var exists int64
		if err := tx.Model(&model.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return util.ErrUserNotFound
		}
		if err := s.LogRepo.Create(tx, dailyLog); err != nil {
			return fmt.Errorf("save daily log: %w", err)
		}
		if err := s.UserRepo.ApplyFootprint(tx, userID, footprint.TotalEmissions, score); err != nil {
			return fmt.Errorf("apply footprint: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("footprint.total_kg", footprint.TotalEmissions),
		attribute.Int("footprint.score", score),
	)
	monitoring.ObserveFootprint(footprint.TransportationEmissions, footprint.MealEmissions, footprint.DigitalEmissions, footprint.TotalEmissions)

	if err := s.Cache.Invalidate(ctx); err != nil {
		logger.Log.Warn("Failed to invalidate leaderboard cache", zap.Error(err))
	}

	if err := s.Publisher.Publish(ctx, events.TypeFootprintLogged, userID, events.FootprintLogged{
		DailyLogID:              dailyLog.ID,
		TransportationEmissions: footprint.TransportationEmissions,
		MealEmissions:           footprint.MealEmissions,
		DigitalEmissions:        footprint.DigitalEmissions,
		TotalEmissions:          footprint.TotalEmissions,
		SustainabilityScore:     score,
	}); err != nil {
		logger.Log.Warn("Failed to publish footprint event", zap.Uint("userId", userID), zap.Error(err))
	}

	logger.Log.Info("Daily activity logged",
		zap.Uint("userId", userID),
		zap.Uint("dailyLogId", dailyLog.ID),
		zap.Float64("totalEmissions", footprint.TotalEmissions),
		zap.Int("score", score),
	)

	return &LogResult{
		DailyLog:            dailyLog,
		Footprint:           footprint,
		SustainabilityScore: score,
	}, nil
}

// GetHistory 最近 days 天（按提交时间）的日志，最新在前
func (s *CarbonService) GetHistory(userID uint, days int) (*History, error) {
	days = clampDays(days)
	since := s.now().AddDate(0, 0, -days)

	logs, err := s.LogRepo.FindSince(userID, since)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []model.DailyLog{}
	}

	return &History{
		Days: days,
		Logs: logs,
		Summary: HistorySummary{
			TotalLogs:             len(logs),
			AverageDailyEmissions: averageEmissions(logs),
		},
	}, nil
}

// GetToday 今天（本地时区零点起）的第一条日志，没有时返回 nil
func (s *CarbonService) GetToday(userID uint) (*model.DailyLog, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.LogRepo.FindFirstSince(userID, midnight)
}

func (s *CarbonService) GetStats(ctx context.Context, userID uint) (*Stats, error) {
	var (
		user *model.User
		logs []model.DailyLog
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.UserRepo.FindByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		l, err := s.LogRepo.FindByUser(userID)
		if err != nil {
			return err
		}
		logs = l
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{
		User: StatsUser{
			Name:       user.Name,
			Level:      ranking.Level(user.Points),
			Points:     user.Points,
			DailyScore: user.DailyScore,
		},
		Statistics: Statistics{
			TotalCarbonFootprint:  carbon.Round2(user.TotalCarbonFootprint),
			TotalDaysLogged:       len(logs),
			AverageDailyEmissions: averageEmissions(logs),
			Equivalent:            carbon.Equivalencies(user.TotalCarbonFootprint),
		},
	}

	if len(logs) > 0 {
		lowest, highest := math.Inf(1), math.Inf(-1)
		for _, l := range logs {
			lowest = math.Min(lowest, l.TotalCarbonForDay)
			highest = math.Max(highest, l.TotalCarbonForDay)
		}
		stats.Statistics.LowestEmissionDay = carbon.Round2(lowest)
		stats.Statistics.HighestEmissionDay = carbon.Round2(highest)
	}
	return stats, nil
}

var historyCSVHeader = []string{
	"date", "transportation_kg", "meals_kg", "digital_kg", "total_kg", "sustainability_score",
}

// ExportHistory 导出最近 days 天的日志为 CSV，返回下载地址
func (s *CarbonService) ExportHistory(ctx context.Context, userID uint, days int) (string, error) {
	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", util.ErrUserNotFound
		}
		return "", err
	}

	history, err := s.GetHistory(userID, days)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(historyCSVHeader); err != nil {
		return "", err
	}
	for _, l := range history.Logs {
		row := []string{
			l.CreatedAt.Format(util.TimeFormat),
			formatKg(l.TransportationEmissions),
			formatKg(l.MealEmissions),
			formatKg(l.DigitalEmissions),
			formatKg(l.TotalCarbonForDay),
			strconv.Itoa(l.SustainabilityScore),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("reports/%d/footprint_%s_%dd.csv", userID, s.now().Format("20060102150405"), history.Days)
	url, err := s.Storage.Upload(ctx, objectName, bytes.NewReader(buf.Bytes()), int64(buf.Len()), util.MimeCSV)
	if err != nil {
		return "", fmt.Errorf("upload report: %w", err)
	}

	logger.Log.Info("Footprint history exported", zap.Uint("userId", userID), zap.Int("rows", len(history.Logs)))
	return url, nil
}

func clampDays(days int) int {
	if days <= 0 {
		return util.DefaultHistoryDays
	}
	if days > util.MaxHistoryDays {
		return util.MaxHistoryDays
	}
	return days
}

func averageEmissions(logs []model.DailyLog) float64 {
	if len(logs) == 0 {
		return 0
	}
	var sum float64
	for _, l := range logs {
		sum += l.TotalCarbonForDay
	}
	return carbon.Round2(sum / float64(len(logs)))
}

func formatKg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
