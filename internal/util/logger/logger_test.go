package logger

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	SetOutput(buf)
	t.Cleanup(func() { SetOutput(os.Stderr) })
	return buf
}

func TestSetOutput(t *testing.T) {
	buf := captureOutput(t)

	log := Logger("test")
	log.Warn("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "subsystem=test")
	assert.Contains(t, output, "level=warn")
}

func TestSetOutput_ExistingLogger(t *testing.T) {
	// 先创建 logger，再切换输出
	log := Logger("test2")

	buf := captureOutput(t)
	log.Error("after switch", "key", "value")

	assert.Contains(t, buf.String(), "after switch")
}

func TestLogger_Cached(t *testing.T) {
	assert.Same(t, Logger("cached"), Logger("cached"))
}

func TestSetLevel(t *testing.T) {
	buf := captureOutput(t)

	log := Logger("levels")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	SetLevel("levels", slog.LevelDebug)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestDiscard(t *testing.T) {
	buf := captureOutput(t)
	Discard().Error("nothing")
	assert.Empty(t, buf.String())
}

func TestParseLevelConfig(t *testing.T) {
	cfg := &Config{DefaultLevel: slog.LevelWarn, SubsystemLevels: map[string]slog.Level{}}
	parseLevelConfig(cfg, "doctor=debug, runtime = info ,error,bogus=loud")

	assert.Equal(t, slog.LevelError, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelForSubsystem("doctor"))
	assert.Equal(t, slog.LevelInfo, cfg.LevelForSubsystem("runtime"))
	assert.Equal(t, slog.LevelError, cfg.LevelForSubsystem("introspect"))
	_, ok := cfg.SubsystemLevels["bogus"]
	assert.False(t, ok)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "doctor=debug")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogAddSource, "1")
	ResetConfig()
	t.Cleanup(ResetConfig)

	cfg := ConfigFromEnv()
	require.NotNil(t, cfg)
	assert.Equal(t, slog.LevelWarn, cfg.DefaultLevel)
	assert.Equal(t, slog.LevelDebug, cfg.LevelForSubsystem("doctor"))
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.True(t, cfg.AddSource)
}

func TestReload(t *testing.T) {
	buf := captureOutput(t)

	log := Logger("reloaded")
	log.Info("before")
	assert.Empty(t, buf.String())

	t.Cleanup(Reload)
	t.Setenv(EnvLogLevel, "reloaded=info")
	Reload()

	log.Info("after")
	assert.Contains(t, buf.String(), "after")
	assert.Equal(t, slog.LevelWarn, ConfigFromEnv().LevelForSubsystem("other"))
}
