package controller

import (
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/carbon"
	"ecotrack_backend/pkg/ranking"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 把服务层错误映射为 HTTP 状态码
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, carbon.ErrInvalidActivity),
		errors.Is(err, ranking.ErrInvalidSortKey),
		errors.Is(err, util.ErrInvalidChallenge),
		errors.Is(err, util.ErrAlreadyJoined):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUserNotFound):
		util.NotFoundMessage(ctx, "User not found")
	case errors.Is(err, util.ErrChallengeNotFound):
		util.NotFoundMessage(ctx, "Challenge not found")
	case errors.Is(err, util.ErrEmailRegistered):
		util.Error(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// pathUserID 解析 :userId，非法时直接返回 400
func pathUserID(ctx *gin.Context) (uint, bool) {
	id := util.MustParseUint(ctx.Param("userId"))
	if id == 0 {
		util.BadRequest(ctx, "invalid userId")
		return 0, false
	}
	return id, true
}

// actingUserID 已登录时以 token 中的用户为准，请求体里的 userId 必须与之一致
func actingUserID(ctx *gin.Context, bodyUserID uint) (uint, error) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		if bodyUserID == 0 {
			return 0, errors.New("userId is required")
		}
		return bodyUserID, nil
	}
	if bodyUserID != 0 && bodyUserID != claims.UserID {
		return 0, util.ErrPermissionDenied
	}
	return claims.UserID, nil
}

// requireSelf 只允许访问自己的数据
func requireSelf(ctx *gin.Context, userID uint) bool {
	claims := util.GetUserFromContext(ctx)
	if claims == nil || claims.UserID != userID {
		util.Forbidden(ctx)
		return false
	}
	return true
}
