package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type boardRow struct {
	Rank   int    `json:"rank"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
}

func TestLeaderboardEndpoints(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateUser(t, env.db, "ada", "MIT", "CS", 120)
	bob := testutil.CreateUser(t, env.db, "bob", "MIT", "EE", 340)
	testutil.CreateUser(t, env.db, "cy", "Stanford", "CS", 700)

	w, resp := env.do(t, http.MethodGet, "/api/leaderboard?limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []boardRow
	require.NoError(t, json.Unmarshal(resp.Data, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, boardRow{Rank: 1, Name: "cy", Points: 700, Level: 8}, rows[0])

	w, _ = env.do(t, http.MethodGet, "/api/leaderboard?sortBy=password", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, http.MethodGet, "/api/leaderboard/university?university=MIT", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var uni struct {
		University  string     `json:"university"`
		Leaderboard []boardRow `json:"leaderboard"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &uni))
	assert.Equal(t, "MIT", uni.University)
	require.Len(t, uni.Leaderboard, 2)
	assert.Equal(t, "bob", uni.Leaderboard[0].Name)

	w, _ = env.do(t, http.MethodGet, "/api/leaderboard/department", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, http.MethodGet, "/api/leaderboard/department?department=CS&limit=1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), `"name":"cy"`)
	assert.NotContains(t, string(resp.Data), `"name":"ada"`)

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/leaderboard/rank/%d", bob.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var rank struct {
		Rank                 int `json:"rank"`
		Level                int `json:"level"`
		NextLevelRequirement int `json:"nextLevelRequirement"`
		PointsForNextLevel   int `json:"pointsForNextLevel"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &rank))
	assert.Equal(t, 2, rank.Rank)
	assert.Equal(t, 4, rank.Level)
	assert.Equal(t, 500, rank.NextLevelRequirement)
	assert.Equal(t, 160, rank.PointsForNextLevel)

	w, _ = env.do(t, http.MethodGet, "/api/leaderboard/rank/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChallengeEndpoints(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "", "", 0)
	token := env.tokenFor(t, user)

	create := map[string]interface{}{
		"name":       "Car-Free Week",
		"category":   "transportation",
		"difficulty": "medium",
		"startDate":  time.Now().Add(-time.Hour).Format(time.RFC3339),
		"endDate":    time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
	}
	w, _ := env.do(t, http.MethodPost, "/api/leaderboard/challenges", create, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, resp := env.do(t, http.MethodPost, "/api/leaderboard/challenges", create, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var challenge model.Challenge
	require.NoError(t, json.Unmarshal(resp.Data, &challenge))
	assert.Equal(t, 10, challenge.PointsReward)

	create["category"] = "space"
	w, _ = env.do(t, http.MethodPost, "/api/leaderboard/challenges", create, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = env.do(t, http.MethodGet, "/api/leaderboard/challenges/active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var active []model.Challenge
	require.NoError(t, json.Unmarshal(resp.Data, &active))
	require.Len(t, active, 1)

	join := map[string]interface{}{"challengeId": challenge.ID, "userId": user.ID}
	w, resp = env.do(t, http.MethodPost, "/api/leaderboard/challenges/join", join, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Successfully joined challenge", resp.Message)

	w, resp = env.do(t, http.MethodGet, "/api/leaderboard/challenges/active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), `"participantCount":1`)

	w, resp = env.do(t, http.MethodPost, "/api/leaderboard/challenges/join", join, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already joined this challenge", resp.Message)

	w, _ = env.do(t, http.MethodPost, "/api/leaderboard/challenges/join", map[string]interface{}{"challengeId": 999, "userId": user.ID}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
