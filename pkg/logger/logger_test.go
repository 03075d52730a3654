package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name, mode string
		want       zapcore.Level
	}{
		{"", "debug", zap.DebugLevel},
		{"", "release", zap.InfoLevel},
		{"warn", "debug", zap.WarnLevel},
		{"ERROR", "release", zap.ErrorLevel},
	}
	for _, tt := range tests {
		lvl, err := ParseLevel(tt.name, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.want, lvl, "level=%q mode=%q", tt.name, tt.mode)
	}

	_, err := ParseLevel("loud", "debug")
	assert.Error(t, err)
}

func TestSetLevelAppliesToExistingCore(t *testing.T) {
	defer level.SetLevel(level.Level())

	var file, console bytes.Buffer
	log := zap.New(newCore(&file, &console))

	require.NoError(t, SetLevel("warn", "debug"))
	log.Info("dropped")
	log.Warn("kept", zap.Uint("userId", 7))
	require.NoError(t, log.Sync())

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(file.Bytes()), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.EqualValues(t, 7, entry["userId"])
	assert.NotContains(t, console.String(), "dropped")

	assert.Error(t, SetLevel("loud", "debug"))
	assert.Equal(t, zap.WarnLevel, Level())
}
