package service

import (
	"testing"
	"time"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/testutil"
	"ecotrack_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(f *fixture) *AuthService {
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(f.users, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)

	user, err := svc.Register(RegisterInput{
		Name:       "Ada",
		Email:      " Ada@Example.edu ",
		Password:   "secret123",
		University: "MIT",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.edu", user.Email)
	assert.NotEqual(t, "secret123", user.Password)
	assert.Equal(t, 1, user.Level)

	_, err = svc.Register(RegisterInput{Name: "Dup", Email: "ada@example.edu", Password: "secret123"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)

	result, err := svc.Login("ada@example.edu", "secret123")
	require.NoError(t, err)
	claims, err := util.ParseJWT(result.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = svc.Login("ada@example.edu", "wrong")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
	_, err = svc.Login("nobody@example.edu", "secret123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	f := newFixture(t)
	svc := newAuthService(f)
	testutil.CreateUser(t, f.db, "top", "", "", 900)
	user := testutil.CreateUser(t, f.db, "ada", "MIT", "CS", 150)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", profile.Name)
	assert.Equal(t, 2, profile.Level)
	assert.Equal(t, 2, profile.Rank)
	assert.Equal(t, 300, profile.NextLevelRequirement)
	assert.Equal(t, 150, profile.PointsForNextLevel)
	assert.NotNil(t, profile.Badges)

	_, err = svc.GetProfile(999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
