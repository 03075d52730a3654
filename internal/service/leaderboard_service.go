package service

import (
	"context"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"ecotrack_backend/pkg/ranking"
	"errors"
	"strconv"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	scopeGlobal     = "global"
	scopeUniversity = "university"
	scopeDepartment = "department"
	scopeRank       = "rank"
)

type LeaderboardService struct {
	UserRepo *repository.UserRepository
	Cache    *repository.LeaderboardCache
}

func NewLeaderboardService(userRepo *repository.UserRepository, cache *repository.LeaderboardCache) *LeaderboardService {
	return &LeaderboardService{UserRepo: userRepo, Cache: cache}
}

// UserRank 单个用户的名次，同分用户名次相同
type UserRank struct {
	Name                 string `json:"name"`
	Rank                 int    `json:"rank"`
	Level                int    `json:"level"`
	Points               int    `json:"points"`
	NextLevelRequirement int    `json:"nextLevelRequirement"`
	PointsForNextLevel   int    `json:"pointsForNextLevel"`
}

// GetLeaderboard 全站排行，sortBy 为空时按积分
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, sortBy string, limit int) ([]ranking.Entry, error) {
	key, err := ranking.ParseSortKey(sortBy)
	if err != nil {
		return nil, err
	}
	limit = clampLimit(limit, util.DefaultGlobalLeaderboardLimit)
	return s.board(ctx, scopeGlobal, "", repository.StandingFilter{}, key, limit)
}

func (s *LeaderboardService) GetUniversityLeaderboard(ctx context.Context, university string, limit int) ([]ranking.Entry, error) {
	limit = clampLimit(limit, util.DefaultGroupLeaderboardLimit)
	return s.board(ctx, scopeUniversity, university, repository.StandingFilter{University: university}, ranking.SortByPoints, limit)
}

func (s *LeaderboardService) GetDepartmentLeaderboard(ctx context.Context, department string, limit int) ([]ranking.Entry, error) {
	limit = clampLimit(limit, util.DefaultGroupLeaderboardLimit)
	return s.board(ctx, scopeDepartment, department, repository.StandingFilter{Department: department}, ranking.SortByPoints, limit)
}

func (s *LeaderboardService) board(ctx context.Context, scope, value string, filter repository.StandingFilter, key ranking.SortKey, limit int) ([]ranking.Entry, error) {
	cacheKey := repository.LeaderboardKey(scope, value, string(key), limit)

	var cached []ranking.Entry
	if hit, err := s.Cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Log.Warn("Leaderboard cache read failed", zap.String("key", cacheKey), zap.Error(err))
	} else if hit {
		monitoring.LeaderboardCache.WithLabelValues("hit").Inc()
		return cached, nil
	}
	monitoring.LeaderboardCache.WithLabelValues("miss").Inc()

	standings, err := s.UserRepo.FindStandings(filter, key, limit)
	if err != nil {
		return nil, err
	}
	entries := ranking.RankEntries(standings)

	if err := s.Cache.Set(ctx, cacheKey, entries); err != nil {
		logger.Log.Warn("Leaderboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	return entries, nil
}

func (s *LeaderboardService) GetUserRank(ctx context.Context, userID uint) (*UserRank, error) {
	cacheKey := repository.LeaderboardKey(scopeRank, strconv.FormatUint(uint64(userID), 10), string(ranking.SortByPoints), 1)

	var cached UserRank
	if hit, err := s.Cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		monitoring.LeaderboardCache.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	monitoring.LeaderboardCache.WithLabelValues("miss").Inc()

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	above, err := s.UserRepo.CountWithMorePoints(user.Points)
	if err != nil {
		return nil, err
	}

	level := ranking.Level(user.Points)
	result := &UserRank{
		Name:                 user.Name,
		Rank:                 int(above) + 1,
		Level:                level,
		Points:               user.Points,
		NextLevelRequirement: ranking.NextLevelRequirement(level),
		PointsForNextLevel:   ranking.PointsForNextLevel(user.Points, level),
	}

	if err := s.Cache.Set(ctx, cacheKey, result); err != nil {
		logger.Log.Warn("Leaderboard cache write failed", zap.String("key", cacheKey), zap.Error(err))
	}
	return result, nil
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > util.MaxLeaderboardLimit {
		return util.MaxLeaderboardLimit
	}
	return limit
}
