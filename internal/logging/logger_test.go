package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ersonp/patchnotes/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{
			name:    "default level is info",
			cfg:     config.LogConfig{},
			enabled: zapcore.InfoLevel,
			muted:   zapcore.DebugLevel,
		},
		{
			name:    "debug development logger",
			cfg:     config.LogConfig{Level: "debug", Development: true},
			enabled: zapcore.DebugLevel,
			muted:   zapcore.DebugLevel - 1,
		},
		{
			name:    "warn",
			cfg:     config.LogConfig{Level: "warn"},
			enabled: zapcore.WarnLevel,
			muted:   zapcore.InfoLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.enabled))
			assert.False(t, logger.Core().Enabled(tt.muted))
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
