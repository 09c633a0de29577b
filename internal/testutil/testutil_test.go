package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookexplorer/internal/config"
)

func TestTestEnv_Paths(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("covers", "a.jpg")
	assert.Equal(t, filepath.Join(env.RootDir(), "covers", "a.jpg"), path)
	assert.True(t, env.isWithinSandbox(path))
	assert.False(t, env.isWithinSandbox(filepath.Dir(env.RootDir())))
}

func TestTestEnv_Files(t *testing.T) {
	env := NewTestEnv(t)

	assert.False(t, env.FileExists("nested/config.yaml"))
	path := env.WriteFile("nested/config.yaml", "server:\n  addr: :9000\n")
	assert.True(t, env.FileExists("nested/config.yaml"))
	assert.Equal(t, "server:\n  addr: :9000\n", env.ReadFile("nested/config.yaml"))

	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestTestEnv_Chdir(t *testing.T) {
	env := NewTestEnv(t)
	env.Chdir()

	wd, err := os.Getwd()
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(env.RootDir())
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(wd)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResetConfigRestoresState(t *testing.T) {
	config.BaseURL = "https://before.test"
	t.Cleanup(func() { config.BaseURL = "" })

	t.Run("inner", func(t *testing.T) {
		ResetConfig(t)
		config.BaseURL = "https://changed.test"
		viper.Set("server.addr", ":1")
	})

	assert.Equal(t, "https://before.test", config.BaseURL)
	assert.False(t, viper.IsSet("server.addr"))
}

func TestSetTestConfig(t *testing.T) {
	SetTestConfig(t, "http://upstream.test", "")

	assert.Equal(t, "http://upstream.test", config.BaseURL)
	assert.Equal(t, "https://covers.openlibrary.org", config.CoverBaseURL)
	assert.Equal(t, 5*time.Second, config.Timeout)
	assert.Equal(t, 500, config.DescriptionLimit)
}
