package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConsoleAndJSON(t *testing.T) {
	for _, json := range []bool{false, true} {
		l, cleanup := New("debug", json)
		require.NotNil(t, l)
		l.Info("hello")
		cleanup()
	}
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	l, cleanup := New("not-a-level", true)
	defer cleanup()
	require.NotNil(t, l)
	assert.False(t, l.Core().Enabled(-1)) // debug 关闭
}

func TestNewWithRotateWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	l, cleanup := NewWithRotate("info", true, FileRotate{
		Enable:    true,
		Filename:  file,
		MaxSizeMB: 1,
	})
	l.Info("rotated entry")
	cleanup()

	assert.FileExists(t, file)
}
