package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/middleware"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/repository"
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/testutil"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	cfg    *config.Config
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "controller-secret", ExpireTime: time.Hour},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
	}

	userRepo := repository.NewUserRepository(db)
	logRepo := repository.NewDailyLogRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	cache := repository.NewLeaderboardCache(nil, 0)
	storage := service.NewStorageService(&cfg.Storage)

	userCtrl := NewUserController(service.NewAuthService(userRepo, cfg))
	carbonCtrl := NewCarbonController(service.NewCarbonService(db, userRepo, logRepo, cache, nil, storage))
	boardCtrl := NewLeaderboardController(service.NewLeaderboardService(userRepo, cache))
	challengeCtrl := NewChallengeController(service.NewChallengeService(challengeRepo, userRepo, cache, nil))

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", NewHealthController(db, nil).HealthCheck)

	users := api.Group("/users")
	users.POST("/register", userCtrl.Register)
	users.POST("/login", userCtrl.Login)
	users.GET("/profile/:userId", middleware.AuthMiddleware(cfg), userCtrl.GetProfile)

	carbon := api.Group("/carbon", middleware.TryAuthMiddleware(cfg))
	carbon.GET("/factors", carbonCtrl.GetFactors)
	carbon.POST("/preview", carbonCtrl.Preview)
	carbon.POST("/log", carbonCtrl.LogDailyActivity)
	carbon.GET("/history/:userId", carbonCtrl.GetHistory)
	carbon.GET("/history/:userId/export", middleware.AuthMiddleware(cfg), carbonCtrl.ExportHistory)
	carbon.GET("/today/:userId", carbonCtrl.GetToday)
	carbon.GET("/stats/:userId", carbonCtrl.GetStats)

	board := api.Group("/leaderboard", middleware.TryAuthMiddleware(cfg))
	board.GET("", boardCtrl.GetLeaderboard)
	board.GET("/rank/:userId", boardCtrl.GetUserRank)
	board.GET("/university", boardCtrl.GetUniversityLeaderboard)
	board.GET("/department", boardCtrl.GetDepartmentLeaderboard)
	board.GET("/challenges/active", challengeCtrl.GetActiveChallenges)
	board.POST("/challenges/join", challengeCtrl.JoinChallenge)
	board.POST("/challenges", middleware.AuthMiddleware(cfg), challengeCtrl.CreateChallenge)

	return &testEnv{db: db, cfg: cfg, router: r}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func (e *testEnv) tokenFor(t *testing.T, user *model.User) string {
	t.Helper()
	token, err := util.GenerateJWT(user, e.cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)
	return token
}
