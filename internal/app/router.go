package app

import (
	"ecotrack_backend/docs"
	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/middleware"
	"ecotrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	// 可选认证：登录用户以 token 为准，匿名请求需在请求体中给出 userId
	optional := []gin.HandlerFunc{
		middleware.TryAuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
	}
	required := []gin.HandlerFunc{
		middleware.AuthMiddleware(cfg),
		middleware.ActivityMiddleware(repos.user),
	}

	a.registerUserRoutes(api, c, required)
	a.registerCarbonRoutes(api, c, optional, required)
	a.registerLeaderboardRoutes(api, c, optional, required)
}

func (a *App) registerUserRoutes(api *gin.RouterGroup, c *controllers, required []gin.HandlerFunc) {
	users := api.Group("/users")
	{
		users.POST("/register", c.user.Register)
		users.POST("/login", c.user.Login)
		users.Group("", required...).GET("/profile/:userId", c.user.GetProfile)
	}
}

func (a *App) registerCarbonRoutes(api *gin.RouterGroup, c *controllers, optional, required []gin.HandlerFunc) {
	carbon := api.Group("/carbon")
	carbon.GET("/factors", c.carbon.GetFactors)
	carbon.POST("/preview", c.carbon.Preview)

	tracked := carbon.Group("", optional...)
	{
		tracked.POST("/log", c.carbon.LogDailyActivity)
		tracked.GET("/history/:userId", c.carbon.GetHistory)
		tracked.GET("/today/:userId", c.carbon.GetToday)
		tracked.GET("/stats/:userId", c.carbon.GetStats)
	}

	carbon.Group("", required...).GET("/history/:userId/export", c.carbon.ExportHistory)
}

func (a *App) registerLeaderboardRoutes(api *gin.RouterGroup, c *controllers, optional, required []gin.HandlerFunc) {
	board := api.Group("/leaderboard", optional...)
	{
		board.GET("", c.leaderboard.GetLeaderboard)
		board.GET("/rank/:userId", c.leaderboard.GetUserRank)
		board.GET("/university", c.leaderboard.GetUniversityLeaderboard)
		board.GET("/department", c.leaderboard.GetDepartmentLeaderboard)
	}

	challenges := api.Group("/leaderboard/challenges")
	{
		challenges.GET("/active", c.challenge.GetActiveChallenges)
		challenges.Group("", optional...).POST("/join", c.challenge.JoinChallenge)
		challenges.Group("", required...).POST("", c.challenge.CreateChallenge)
	}
}
