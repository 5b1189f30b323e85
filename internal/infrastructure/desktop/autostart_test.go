package desktop

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAutostart(t *testing.T) *AutostartAdapter {
	t.Helper()
	return &AutostartAdapter{
		configHome: t.TempDir(),
		executable: func() (string, error) { return "/usr/local/bin/jumpkey", nil },
	}
}

func TestAutostart_EnableDisable(t *testing.T) {
	a := newTestAutostart(t)
	ctx := context.Background()

	status, err := a.Status(ctx)
	require.NoError(t, err)
	assert.False(t, status.Installed)

	path, err := a.Enable(ctx)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(a.configHome, "autostart", "jumpkey.desktop"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exec=/usr/local/bin/jumpkey run")

	_, err = a.Enable(ctx)
	require.NoError(t, err, "enable is idempotent")

	status, err = a.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Installed)
	assert.Equal(t, "/usr/local/bin/jumpkey", status.ExecutablePath)

	require.NoError(t, a.Disable(ctx))
	require.NoError(t, a.Disable(ctx), "disable is idempotent")
	assert.NoFileExists(t, path)
}
