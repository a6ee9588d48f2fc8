package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/tally/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("~/data/tally.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "tally.db"), got)

	got, err = ExpandPath("/var/lib/tally.db")
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/tally.db", got)

	got, err = ExpandPath("~other/x")
	require.NoError(t, err)
	assert.Equal(t, "~other/x", got)
}

func TestNewApp(t *testing.T) {
	cfg := config.NewDefault()
	cfg.Database.Path = filepath.Join(t.TempDir(), "nested", "tally.db")

	application, cleanup, err := NewApp(cfg, os.DirFS("../.."))
	require.NoError(t, err)
	defer cleanup()

	require.NotNil(t, application.Service)
	assert.Equal(t, cfg.EffectivePageSize(), application.Service.Transaction.PageSize())
	assert.FileExists(t, cfg.Database.Path)
}
