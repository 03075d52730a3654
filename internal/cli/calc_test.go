package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ecotrack_backend/pkg/carbon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activityJSON = `{
  "transportation": {"type": "car", "distance": 10},
  "meals": [{"type": "meat", "count": 2}],
  "digitalWaste": {"emails": 100, "streamingHours": 2}
}`

func TestCalcCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.json")
	require.NoError(t, os.WriteFile(path, []byte(activityJSON), 0o600))

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"calc", "--file", path})
	require.NoError(t, cmd.Execute())

	var got calcOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.InDelta(t, 12.57, got.Footprint.TotalEmissions, 1e-9)
	assert.Equal(t, 50, got.SustainabilityScore)
	assert.Greater(t, got.Equivalent.MilesDriven, 0.0)
}

func TestCalcCommandFromStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader(`{"transportation":{"type":"bus","distance":10}}`))
	cmd.SetArgs([]string{"calc", "-f", "-"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"totalEmissions": 0.89`)
}

func TestRunCalcRejectsInvalidActivity(t *testing.T) {
	err := runCalc(strings.NewReader(`{"meals":[{"type":"plastic"}]}`), &bytes.Buffer{})
	assert.ErrorIs(t, err, carbon.ErrInvalidActivity)

	err = runCalc(strings.NewReader(`not json`), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestCalcRequiresFileFlag(t *testing.T) {
	cmd := NewRootCmd("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"calc"})
	assert.Error(t, cmd.Execute())
}
