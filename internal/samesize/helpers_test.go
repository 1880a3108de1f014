package samesize

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observed returns a logger whose entries can be inspected.
func observed() (*zap.SugaredLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return zap.New(core).Sugar(), logs
}

// writeFile creates path with size zero bytes, creating parents as needed.
func writeFile(t *testing.T, fsys afero.Fs, path string, size int) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, make([]byte, size), 0o644))
}

// testLimits returns default limits with a smaller capacity and bucket count.
func testLimits() Limits {
	limits := DefaultLimits()
	limits.Buckets = 8
	limits.GroupsPerNode = 2
	limits.Capacity = 3

	return limits
}
