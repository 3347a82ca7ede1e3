package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")

	log, err := NewLogger(false, path)
	require.NoError(t, err)
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "shown")
	assert.NotContains(t, string(b), "hidden")

	dbg, err := NewLogger(true, path)
	require.NoError(t, err)
	assert.True(t, dbg.Core().Enabled(zap.DebugLevel))
}
