package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"ecotrack_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleActivity = map[string]interface{}{
	"transportation": map[string]interface{}{"type": "car", "distance": 10},
	"meals":          []map[string]interface{}{{"type": "meat", "count": 2}},
	"digitalWaste":   map[string]interface{}{"emails": 100, "streamingHours": 2},
}

func TestGetFactors(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodGet, "/api/carbon/factors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Factors  map[string]map[string]float64 `json:"factors"`
		Baseline float64                       `json:"baselineDailyEmissionsKg"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, 0.21, data.Factors["transportation"]["car"])
	assert.Equal(t, 25.0, data.Baseline)
}

func TestPreviewEndpoint(t *testing.T) {
	env := newTestEnv(t)
	w, resp := env.do(t, http.MethodPost, "/api/carbon/preview", sampleActivity, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Footprint struct {
			TotalEmissions float64 `json:"totalEmissions"`
		} `json:"footprint"`
		SustainabilityScore int `json:"sustainabilityScore"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.InDelta(t, 12.57, data.Footprint.TotalEmissions, 1e-9)
	assert.Equal(t, 50, data.SustainabilityScore)
}

func TestLogDailyActivityEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "MIT", "CS", 0)

	body := map[string]interface{}{"userId": user.ID}
	for k, v := range sampleActivity {
		body[k] = v
	}
	w, resp := env.do(t, http.MethodPost, "/api/carbon/log", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Daily activity logged successfully", resp.Message)

	var data struct {
		DailyLog struct {
			ID                uint    `json:"id"`
			TotalCarbonForDay float64 `json:"totalCarbonForDay"`
		} `json:"dailyLog"`
		SustainabilityScore int `json:"sustainabilityScore"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.NotZero(t, data.DailyLog.ID)
	assert.Equal(t, 50, data.SustainabilityScore)

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/carbon/today/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), `"totalCarbonForDay":12.57`)

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/carbon/history/%d?days=7", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Days    int `json:"days"`
		Summary struct {
			TotalLogs int `json:"totalLogs"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &history))
	assert.Equal(t, 7, history.Days)
	assert.Equal(t, 1, history.Summary.TotalLogs)

	w, resp = env.do(t, http.MethodGet, fmt.Sprintf("/api/carbon/stats/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(resp.Data), `"totalDaysLogged":1`)
}

func TestLogDailyActivityErrors(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "", "", 0)
	other := testutil.CreateUser(t, env.db, "bob", "", "", 0)

	cases := []struct {
		name   string
		body   map[string]interface{}
		token  string
		status int
	}{
		{"missing user", map[string]interface{}{}, "", http.StatusBadRequest},
		{"unknown user", map[string]interface{}{"userId": 999}, "", http.StatusNotFound},
		{"unknown meal", map[string]interface{}{"userId": user.ID, "meals": []map[string]interface{}{{"type": "plastic"}}}, "", http.StatusBadRequest},
		{"negative distance", map[string]interface{}{"userId": user.ID, "transportation": map[string]interface{}{"type": "bus", "distance": -1}}, "", http.StatusBadRequest},
		{"submitting for someone else", map[string]interface{}{"userId": other.ID}, env.tokenFor(t, user), http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, _ := env.do(t, http.MethodPost, "/api/carbon/log", tc.body, tc.token)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
		})
	}
}

func TestLogDailyActivityUsesTokenUser(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "", "", 0)

	w, _ := env.do(t, http.MethodPost, "/api/carbon/log", sampleActivity, env.tokenFor(t, user))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestTodayWithoutLog(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "", "", 0)

	w, resp := env.do(t, http.MethodGet, fmt.Sprintf("/api/carbon/today/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "No activity logged today", resp.Message)
	assert.Equal(t, "null", string(resp.Data))
}

func TestInvalidUserIDParam(t *testing.T) {
	env := newTestEnv(t)
	w, _ := env.do(t, http.MethodGet, "/api/carbon/stats/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportHistoryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	user := testutil.CreateUser(t, env.db, "ada", "", "", 0)
	other := testutil.CreateUser(t, env.db, "bob", "", "", 0)
	path := fmt.Sprintf("/api/carbon/history/%d/export", user.ID)

	w, _ := env.do(t, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = env.do(t, http.MethodGet, path, nil, env.tokenFor(t, other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, resp := env.do(t, http.MethodGet, path, nil, env.tokenFor(t, user))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var data struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.True(t, strings.HasSuffix(data.URL, ".csv"))
}
