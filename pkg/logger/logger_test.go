package logger

import (
	"testing"

	"qa_kb_backend/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zap.DebugLevel, ParseLevel("", "debug"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("", "release"))
	assert.Equal(t, zap.WarnLevel, ParseLevel("warn", "debug"))
	assert.Equal(t, zap.ErrorLevel, ParseLevel(" error ", "release"))
	assert.Equal(t, zap.InfoLevel, ParseLevel("verbose", "release"))
}

func TestApplyConfigChangesLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Log.Level = "warn"
	ApplyConfig(cfg)
	assert.Equal(t, zap.WarnLevel, Level())

	cfg.Log.Level = "debug"
	ApplyConfig(cfg)
	assert.Equal(t, zap.DebugLevel, Level())
}
