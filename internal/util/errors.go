package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrAlreadyJoined      = errors.New("user already joined this challenge")
)

// ErrInvalidChallenge 创建挑战时参数不合法
var ErrInvalidChallenge = errors.New("invalid challenge")
