package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 0, 2, 0, false)
	require.NoError(t, err)
	r.maxSize = 16

	tick := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	for i := 0; i < 4; i++ {
		_, err := r.Write([]byte("0123456789\n"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if e.Name() != "test.log" {
			backups++
		}
	}
	assert.Equal(t, 2, backups, "old backups beyond maxBackups are pruned")
	_, err = os.Stat(filepath.Join(dir, "test.log"))
	assert.NoError(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", ParseLevel("DEBUG").String())
	assert.Equal(t, "warn", ParseLevel("warning").String())
	assert.Equal(t, "info", ParseLevel("nonsense").String())
}
