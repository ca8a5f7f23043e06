package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/oranolio956/qa-automation-framework-sub005/internal/config"
)

func resetLogger() {
	globalLogger.Store(nil)
	once = sync.Once{}
}

func TestGetLoggerBeforeInitialize(t *testing.T) {
	resetLogger()

	logger := GetLogger()
	require.NotNil(t, logger, "GetLogger must never return nil")
	assert.NotPanics(t, func() {
		logger.Debug("fallback logger works")
	})
}

func TestInitializeLoggerStoresGlobal(t *testing.T) {
	resetLogger()

	InitializeLogger(config.LoggerConfig{
		Level:       "debug",
		Format:      "console",
		ServiceName: "stealth-test",
	})

	logger := GetLogger()
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestInitializeLoggerRunsOnce(t *testing.T) {
	resetLogger()

	InitializeLogger(config.LoggerConfig{Level: "error", Format: "json"})
	first := GetLogger()

	// A second call must not replace the instance.
	InitializeLogger(config.LoggerConfig{Level: "debug", Format: "console"})
	assert.Same(t, first, GetLogger())
}

func TestInitializeLoggerBadLevelFallsBack(t *testing.T) {
	resetLogger()

	InitializeLogger(config.LoggerConfig{Level: "not-a-level", Format: "json"})
	logger := GetLogger()
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestSyncDoesNotPanic(t *testing.T) {
	resetLogger()
	assert.NotPanics(t, Sync)

	InitializeLogger(config.LoggerConfig{Level: "info", Format: "json"})
	assert.NotPanics(t, Sync)
}
