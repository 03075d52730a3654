package service

import (
	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/ranking"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

type RegisterInput struct {
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	University string `json:"university" binding:"max=150"`
	Department string `json:"department" binding:"max=150"`
}

type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Profile 用户资料，level 按积分实时计算
type Profile struct {
	*model.User
	Rank                 int `json:"rank"`
	NextLevelRequirement int `json:"nextLevelRequirement"`
	PointsForNextLevel   int `json:"pointsForNextLevel"`
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	_, err := s.UserRepo.FindByEmail(email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:       strings.TrimSpace(input.Name),
		Email:      email,
		Password:   string(hashedPassword),
		University: strings.TrimSpace(input.University),
		Department: strings.TrimSpace(input.Department),
		Level:      1,
		Badges:     []string{},
		LastSeen:   time.Now(),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	logger.Log.Info("User registered", zap.Uint("userId", user.ID), zap.String("university", user.University))
	return user, nil
}

func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	user, err := s.UserRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	user.Level = ranking.Level(user.Points)
	return &LoginResult{Token: token, User: user}, nil
}

func (s *AuthService) GetProfile(userID uint) (*Profile, error) {
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

	user.Level = ranking.Level(user.Points)
	if user.Badges == nil {
		user.Badges = []string{}
	}
	return &Profile{
		User:                 user,
		Rank:                 int(above) + 1,
		NextLevelRequirement: ranking.NextLevelRequirement(user.Level),
		PointsForNextLevel:   ranking.PointsForNextLevel(user.Points, user.Level),
	}, nil
}
