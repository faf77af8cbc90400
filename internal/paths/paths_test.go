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
		assert.Equal(t, "/tmp/xdg-config/satchel", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "satchel"), got)
	})
}

func TestDefaultDataDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_DATA_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")
		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-data/satchel", got)
	})

	t.Run("falls back to ~/.local/share when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_DATA_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultDataDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".local", "share", "satchel"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		envVal   string
		wantPath string
	}{
		{
			name:     "flag wins over env",
			flag:     "/explicit/config",
			envVal:   "/env/config",
			wantPath: "/explicit/config",
		},
		{
			name:     "env wins when flag empty",
			flag:     "",
			envVal:   "/env/config",
			wantPath: "/env/config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.envVal)
			got, err := ResolveConfigDir(tt.flag)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}

func TestResolveConfigDirPlatformDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	want, err := DefaultConfigDir()
	require.NoError(t, err)

	got, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveDataDir(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		configYAML string
		envVal     string
		wantPath   string
	}{
		{
			name:       "flag wins over everything",
			flag:       "/flag/data",
			configYAML: "/config/data",
			envVal:     "/env/data",
			wantPath:   "/flag/data",
		},
		{
			name:       "config value wins over env",
			configYAML: "/config/data",
			envVal:     "/env/data",
			wantPath:   "/config/data",
		},
		{
			name:     "env wins when flag and config empty",
			envVal:   "/env/data",
			wantPath: "/env/data",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDataDir, tt.envVal)
			got, err := ResolveDataDir(tt.flag, tt.configYAML)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, got)
		})
	}
}

func TestResolveDataDirPlatformDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")
	want, err := DefaultDataDir()
	require.NoError(t, err)

	got, err := ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRelativeFlagBecomesAbsolute(t *testing.T) {
	got, err := ResolveConfigDir("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}
