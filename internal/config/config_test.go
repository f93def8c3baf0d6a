package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, 700, cfg.Graph.TeamCount)
	assert.Equal(t, 1000, cfg.Graph.EmployeesPerSide)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.Equal(t, "lowest-id", cfg.Search.Branching)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "ascii", cfg.Report.Format)
	assert.True(t, cfg.Report.LowerBound)
	assert.Empty(t, cfg.Validate())
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		assert.Equal(t, "/custom/config/bicover", ConfigDir())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, _ := os.UserHomeDir()
		assert.Equal(t, filepath.Join(home, ".config", "bicover"), ConfigDir())
	})
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInit_FileAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	path := filepath.Join(dir, "bicover.yaml")
	body := "graph:\n  team_count: 40\n  employees_per_side: 20\n  seed: 7\nsearch:\n  branching: highest-degree\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	t.Setenv("BICOVER_SEARCH_WORKERS", "4")

	require.NoError(t, Init(path))
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Graph.TeamCount)
	assert.Equal(t, 20, cfg.Graph.EmployeesPerSide)
	assert.Equal(t, int64(7), cfg.Graph.Seed)
	assert.Equal(t, "highest-degree", cfg.Search.Branching)
	assert.Equal(t, 4, cfg.Search.Workers)
	// untouched keys keep their defaults
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestInit_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	err := Init(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.Set("search.branching", "random")
	viper.Set("report.format", "html")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}
