// internal/common/logger/logger_test.go
package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewZapAdapter(zap.New(core)), logs
}

func TestZapAdapter_EmitsFields(t *testing.T) {
	log, logs := observedLogger(zapcore.InfoLevel)

	log.Info("search completed", map[string]interface{}{
		"totalJobs": 3,
		"agent":     "seek",
	})

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "search completed", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.EqualValues(t, 3, fields["totalJobs"])
	assert.Equal(t, "seek", fields["agent"])
}

func TestZapAdapter_WithFieldsAccumulate(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)

	log.WithFields(map[string]interface{}{"component": "dispatcher"}).
		Debug("agent call succeeded", map[string]interface{}{"agent": "indeed"})

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "dispatcher", fields["component"])
	assert.Equal(t, "indeed", fields["agent"])
}

func TestZapAdapter_WithError(t *testing.T) {
	log, logs := observedLogger(zapcore.WarnLevel)

	log.WithError(errors.New("upstream 503")).Warn("agent call rejected", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "upstream 503", entries[0].ContextMap()["error"])
}

func TestZapAdapter_LevelFiltering(t *testing.T) {
	log, logs := observedLogger(zapcore.WarnLevel)

	log.Debug("dropped", nil)
	log.Info("dropped", nil)
	log.Error("kept", nil)

	assert.Equal(t, 1, logs.Len())
}

func TestNew_BuildsAtRequestedLevel(t *testing.T) {
	for _, tt := range []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	} {
		l := New(tt.level, "json")
		require.NotNil(t, l)
		assert.True(t, l.Core().Enabled(tt.want), tt.level)
		if tt.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tt.want-1), tt.level)
		}
	}
}

func TestNop_DiscardsEverything(t *testing.T) {
	log := Nop()
	log.Info("ignored", map[string]interface{}{"k": "v"})
	log.WithError(errors.New("ignored")).Error("ignored", nil)
}
