package controller

import (
	"ecotrack_backend/internal/service"
	"ecotrack_backend/internal/util"
	"time"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	ChallengeService *service.ChallengeService
}

func NewChallengeController(challengeService *service.ChallengeService) *ChallengeController {
	return &ChallengeController{ChallengeService: challengeService}
}

// JoinChallengeRequest 加入挑战，登录用户可省略 userId
// swagger:model JoinChallengeRequest
type JoinChallengeRequest struct {
	ChallengeID uint `json:"challengeId" binding:"required"`
	UserID      uint `json:"userId"`
}

// GetActiveChallenges godoc
// @Summary 进行中的挑战
// @Tags 挑战
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.ActiveChallenge} "成功"
// @Router /api/leaderboard/challenges/active [get]
func (c *ChallengeController) GetActiveChallenges(ctx *gin.Context) {
	challenges, err := c.ChallengeService.GetActiveChallenges(time.Now())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, challenges)
}

// JoinChallenge godoc
// @Summary 加入挑战
// @Description 同一用户对同一挑战只能加入一次
// @Tags 挑战
// @Accept  json
// @Produce  json
// @Param   body body JoinChallengeRequest true "挑战与用户"
// @Success 200 {object} util.Response{data=model.Challenge} "加入成功"
// @Failure 400 {object} util.Response "已加入或参数错误"
// @Failure 404 {object} util.Response "挑战或用户不存在"
// @Router /api/leaderboard/challenges/join [post]
func (c *ChallengeController) JoinChallenge(ctx *gin.Context) {
	var req JoinChallengeRequest
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

	challenge, err := c.ChallengeService.JoinChallenge(ctx.Request.Context(), req.ChallengeID, userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Successfully joined challenge", challenge)
}

// CreateChallenge godoc
// @Summary 创建挑战
// @Tags 挑战
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body service.CreateChallengeInput true "挑战信息"
// @Success 201 {object} util.Response{data=model.Challenge} "创建成功"
// @Failure 400 {object} util.Response "参数错误"
// @Router /api/leaderboard/challenges [post]
func (c *ChallengeController) CreateChallenge(ctx *gin.Context) {
	var req service.CreateChallengeInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	challenge, err := c.ChallengeService.CreateChallenge(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, challenge)
}
