package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	LeaderboardService *service.LeaderboardService
}

func NewLeaderboardController(leaderboardService *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: leaderboardService}
}

// GetLeaderboard godoc
// @Summary 全站排行榜
// @Tags 排行榜
// @Produce  json
// @Param   sortBy query string false "排序字段 points|level|dailyScore|totalCarbonFootprint" default(points)
// @Param   limit query int false "数量" default(50)
// @Success 200 {object} util.Response{data=[]ranking.Entry} "成功"
// @Failure 400 {object} util.Response "排序字段不合法"
// @Router /api/leaderboard [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	limit := util.QueryInt(ctx.Query("limit"), util.DefaultGlobalLeaderboardLimit, util.MaxLeaderboardLimit)

	entries, err := c.LeaderboardService.GetLeaderboard(ctx.Request.Context(), ctx.Query("sortBy"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}

// GetUserRank godoc
// @Summary 用户名次
// @Description 名次 = 积分更高的用户数 + 1，同分同名次
// @Tags 排行榜
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=service.UserRank} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/leaderboard/rank/{userId} [get]
func (c *LeaderboardController) GetUserRank(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	rank, err := c.LeaderboardService.GetUserRank(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, rank)
}

// GetUniversityLeaderboard godoc
// @Summary 学校排行榜
// @Tags 排行榜
// @Produce  json
// @Param   university query string true "学校"
// @Param   limit query int false "数量" default(30)
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/leaderboard/university [get]
func (c *LeaderboardController) GetUniversityLeaderboard(ctx *gin.Context) {
	university := ctx.Query("university")
	if university == "" {
		util.BadRequest(ctx, "university is required")
		return
	}
	limit := util.QueryInt(ctx.Query("limit"), util.DefaultGroupLeaderboardLimit, util.MaxLeaderboardLimit)

	entries, err := c.LeaderboardService.GetUniversityLeaderboard(ctx.Request.Context(), university, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"university":  university,
		"leaderboard": entries,
	})
}

// GetDepartmentLeaderboard godoc
// @Summary 院系排行榜
// @Tags 排行榜
// @Produce  json
// @Param   department query string true "院系"
// @Param   limit query int false "数量" default(30)
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/leaderboard/department [get]
func (c *LeaderboardController) GetDepartmentLeaderboard(ctx *gin.Context) {
	department := ctx.Query("department")
	if department == "" {
		util.BadRequest(ctx, "department is required")
		return
	}
	limit := util.QueryInt(ctx.Query("limit"), util.DefaultGroupLeaderboardLimit, util.MaxLeaderboardLimit)

	entries, err := c.LeaderboardService.GetDepartmentLeaderboard(ctx.Request.Context(), department, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"department":  department,
		"leaderboard": entries,
	})
}
