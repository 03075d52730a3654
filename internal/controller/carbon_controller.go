package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/carbon"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CarbonController struct {
	CarbonService *service.CarbonService
}

func NewCarbonController(carbonService *service.CarbonService) *CarbonController {
	return &CarbonController{CarbonService: carbonService}
}

// LogActivityRequest 提交当日活动，登录用户可省略 userId
// swagger:model LogActivityRequest
type LogActivityRequest struct {
	UserID uint `json:"userId"`
	carbon.ActivityRecord
}

// GetFactors godoc
// @Summary 排放因子表
// @Description 客户端预览与服务端入库共用的排放因子
// @Tags 碳足迹
// @Produce  json
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/carbon/factors [get]
func (c *CarbonController) GetFactors(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"factors":                  carbon.Factors(),
		"baselineDailyEmissionsKg": carbon.BaselineDailyEmissionsKg,
	})
}

// Preview godoc
// @Summary 预览碳足迹
// @Description 只计算不保存
// @Tags 碳足迹
// @Accept  json
// @Produce  json
// @Param   body body carbon.ActivityRecord true "当日活动"
// @Success 200 {object} util.Response{data=service.FootprintPreview} "成功"
// @Failure 400 {object} util.Response "活动数据不合法"
// @Router /api/carbon/preview [post]
func (c *CarbonController) Preview(ctx *gin.Context) {
	var req carbon.ActivityRecord
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	preview, err := c.CarbonService.Preview(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, preview)
}

// LogDailyActivity godoc
// @Summary 记录当日活动
// @Description 计算碳足迹并保存，同时累加用户总排放、更新当日得分
// @Tags 碳足迹
// @Accept  json
// @Produce  json
// @Param   body body LogActivityRequest true "当日活动"
// @Success 201 {object} util.Response{data=service.LogResult} "保存成功"
// @Failure 400 {object} util.Response "活动数据不合法"
// @Failure 403 {object} util.Response "不能替其他用户提交"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/carbon/log [post]
func (c *CarbonController) LogDailyActivity(ctx *gin.Context) {
	var req LogActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID, err := actingUserID(ctx, req.UserID)
	if err != nil {
		if err == util.ErrPermissionDenied {
			util.Forbidden(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	result, err := c.CarbonService.LogDailyActivity(ctx.Request.Context(), userID, req.ActivityRecord)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, util.Response{
		Code:    http.StatusCreated,
		Message: "Daily activity logged successfully",
		Data:    result,
	})
}

// GetHistory godoc
// @Summary 碳足迹历史
// @Description 最近 days 天的记录（默认 30），附平均每日排放
// @Tags 碳足迹
// @Produce  json
// @Param   userId path int true "用户ID"
// @Param   days query int false "天数" default(30)
// @Success 200 {object} util.Response{data=service.History} "成功"
// @Router /api/carbon/history/{userId} [get]
func (c *CarbonController) GetHistory(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}
	days := util.QueryInt(ctx.Query("days"), util.DefaultHistoryDays, util.MaxHistoryDays)

	history, err := c.CarbonService.GetHistory(userID, days)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// ExportHistory godoc
// @Summary 导出碳足迹历史
// @Description 生成 CSV 报表并返回下载地址，只能导出自己的数据
// @Tags 碳足迹
// @Produce  json
// @Security ApiKeyAuth
// @Param   userId path int true "用户ID"
// @Param   days query int false "天数" default(30)
// @Success 200 {object} util.Response{data=object} "成功"
// @Failure 403 {object} util.Response "无权限"
// @Router /api/carbon/history/{userId}/export [get]
func (c *CarbonController) ExportHistory(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}
	if !requireSelf(ctx, userID) {
		return
	}
	days := util.QueryInt(ctx.Query("days"), util.DefaultHistoryDays, util.MaxHistoryDays)

	url, err := c.CarbonService.ExportHistory(ctx.Request.Context(), userID, days)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}

// GetToday godoc
// @Summary 今日碳足迹
// @Tags 碳足迹
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=model.DailyLog} "今天没有记录时 data 为 null"
// @Router /api/carbon/today/{userId} [get]
func (c *CarbonController) GetToday(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	log, err := c.CarbonService.GetToday(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if log == nil {
		util.SuccessWithMessage(ctx, "No activity logged today", nil)
		return
	}

	util.Success(ctx, log)
}

// GetStats godoc
// @Summary 用户碳足迹统计
// @Description 累计排放、记录天数、平均/最低/最高单日排放及等效换算
// @Tags 碳足迹
// @Produce  json
// @Param   userId path int true "用户ID"
// @Success 200 {object} util.Response{data=service.Stats} "成功"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/carbon/stats/{userId} [get]
func (c *CarbonController) GetStats(ctx *gin.Context) {
	userID, ok := pathUserID(ctx)
	if !ok {
		return
	}

	stats, err := c.CarbonService.GetStats(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, stats)
}
