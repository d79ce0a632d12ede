package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/drawer", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "drawer"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("/tmp/flag-config")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-config", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/env-config")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-config", got)
	})
}

func TestResolveStorePath(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvStore, "/tmp/env-store.jsonl")
		got, err := ResolveStorePath("/tmp/flag-store.db", "/tmp/config-store.jsonl")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-store.db", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvStore, "/tmp/env-store.jsonl")
		got, err := ResolveStorePath("", "/tmp/config-store.jsonl")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/config-store.jsonl", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvStore, "/tmp/env-store.jsonl")
		got, err := ResolveStorePath("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-store.jsonl", got)
	})

	t.Run("defaults to recipes.jsonl in cwd", func(t *testing.T) {
		t.Setenv(EnvStore, "")
		got, err := ResolveStorePath("", "")
		require.NoError(t, err)

		cwd, err := os.Getwd()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultStoreName), got)
	})

	t.Run("relative flag is made absolute", func(t *testing.T) {
		got, err := ResolveStorePath("dinner.db", "")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "dinner.db", filepath.Base(got))
	})
}
