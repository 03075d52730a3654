package service

import (
	"context"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/events"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ChallengeService struct {
	ChallengeRepo *repository.ChallengeRepository
	UserRepo      *repository.UserRepository
	Cache         *repository.LeaderboardCache
	Publisher     events.Publisher
}

func NewChallengeService(
	challengeRepo *repository.ChallengeRepository,
	userRepo *repository.UserRepository,
	cache *repository.LeaderboardCache,
	publisher events.Publisher,
) *ChallengeService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ChallengeService{
		ChallengeRepo: challengeRepo,
		UserRepo:      userRepo,
		Cache:         cache,
		Publisher:     publisher,
	}
}

type CreateChallengeInput struct {
	Name         string                    `json:"name" binding:"required,max=150"`
	Description  string                    `json:"description"`
	Category     model.ChallengeCategory   `json:"category" binding:"required"`
	Difficulty   model.ChallengeDifficulty `json:"difficulty"`
	PointsReward *int                      `json:"pointsReward"`
	TargetValue  float64                   `json:"targetValue"`
	StartDate    time.Time                 `json:"startDate" binding:"required"`
	EndDate      time.Time                 `json:"endDate" binding:"required"`
}

// ActiveChallenge 进行中的挑战及当前参与人数
type ActiveChallenge struct {
	model.Challenge
	ParticipantCount int64 `json:"participantCount"`
}

func (s *ChallengeService) GetActiveChallenges(now time.Time) ([]ActiveChallenge, error) {
	challenges, err := s.ChallengeRepo.FindActive(now)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(challenges))
	for i := range challenges {
		ids[i] = challenges[i].ID
	}
	counts, err := s.ChallengeRepo.ParticipantCounts(ids)
	if err != nil {
		return nil, err
	}

	active := make([]ActiveChallenge, len(challenges))
	for i := range challenges {
		active[i] = ActiveChallenge{Challenge: challenges[i], ParticipantCount: counts[challenges[i].ID]}
	}
	return active, nil
}

// JoinChallenge 返回加入后的挑战（含参与者）
func (s *ChallengeService) JoinChallenge(ctx context.Context, challengeID, userID uint) (*model.Challenge, error) {
	challenge, err := s.ChallengeRepo.FindByID(challengeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			monitoring.ChallengeJoins.WithLabelValues("not_found").Inc()
			return nil, util.ErrChallengeNotFound
		}
		return nil, err
	}

	if _, err := s.UserRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	participant, err := s.ChallengeRepo.AddParticipant(challengeID, userID)
	if err != nil {
		if errors.Is(err, util.ErrAlreadyJoined) {
			monitoring.ChallengeJoins.WithLabelValues("duplicate").Inc()
		}
		return nil, err
	}
	monitoring.ChallengeJoins.WithLabelValues("joined").Inc()

	challenge.Participants = append(challenge.Participants, *participant)

	if err := s.Cache.Invalidate(ctx); err != nil {
		logger.Log.Warn("Failed to invalidate leaderboard cache", zap.Error(err))
	}
	if err := s.Publisher.Publish(ctx, events.TypeChallengeJoined, userID, events.ChallengeJoined{
		ChallengeID: challenge.ID,
		Name:        challenge.Name,
	}); err != nil {
		logger.Log.Warn("Failed to publish challenge event", zap.Uint("userId", userID), zap.Error(err))
	}

	logger.Log.Info("User joined challenge", zap.Uint("userId", userID), zap.Uint("challengeId", challengeID))
	return challenge, nil
}

func (s *ChallengeService) CreateChallenge(input CreateChallengeInput) (*model.Challenge, error) {
	switch input.Category {
	case model.ChallengeTransportation, model.ChallengeDiet, model.ChallengeDigital, model.ChallengeGeneral:
	default:
		return nil, fmt.Errorf("%w: unknown category %q", util.ErrInvalidChallenge, input.Category)
	}

	difficulty := input.Difficulty
	switch difficulty {
	case "":
		difficulty = model.DifficultyEasy
	case model.DifficultyEasy, model.DifficultyMedium, model.DifficultyHard:
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", util.ErrInvalidChallenge, input.Difficulty)
	}

	if !input.EndDate.After(input.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", util.ErrInvalidChallenge)
	}

	reward := 10
	if input.PointsReward != nil {
		if *input.PointsReward < 0 {
			return nil, fmt.Errorf("%w: pointsReward must not be negative", util.ErrInvalidChallenge)
		}
		reward = *input.PointsReward
	}

	challenge := &model.Challenge{
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Category:     input.Category,
		Difficulty:   difficulty,
		PointsReward: reward,
		TargetValue:  input.TargetValue,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
	}
	if err := s.ChallengeRepo.Create(challenge); err != nil {
		return nil, err
	}

	logger.Log.Info("Challenge created", zap.Uint("challengeId", challenge.ID), zap.String("name", challenge.Name))
	return challenge, nil
}
