// Package config loads bicover settings from defaults, an optional YAML
// file and BICOVER_* environment variables through viper.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete bicover configuration.
type Config struct {
	Graph   GraphConfig   `mapstructure:"graph"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
	Report  ReportConfig  `mapstructure:"report"`
}

// GraphConfig controls random instance generation.
type GraphConfig struct {
	// TeamCount is the number of distinct teams to draw.
	TeamCount int `mapstructure:"team_count"`
	// EmployeesPerSide is the size of each employee universe.
	EmployeesPerSide int `mapstructure:"employees_per_side"`
	// Seed feeds the generator RNG; 0 selects the fixed default stream.
	Seed int64 `mapstructure:"seed"`
}

// SearchConfig controls the cover search.
type SearchConfig struct {
	// Workers is the number of components searched at once (0 = one per CPU).
	Workers int `mapstructure:"workers"`
	// MaxExpansions bounds the work of one component search (0 = unlimited).
	MaxExpansions int `mapstructure:"max_expansions"`
	// Branching is "lowest-id" or "highest-degree".
	Branching string `mapstructure:"branching"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// ReportConfig controls the result report.
type ReportConfig struct {
	// Format is "ascii" or "markdown".
	Format string `mapstructure:"format"`
	// Components lists every component in the report, not just the summary.
	Components bool `mapstructure:"components"`
	// LowerBound adds the exact minimum cover size (König) and the gap to it.
	LowerBound bool `mapstructure:"lower_bound"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			TeamCount:        700,
			EmployeesPerSide: 1000,
			Seed:             0,
		},
		Search: SearchConfig{
			Workers:       1,
			MaxExpansions: 5_000_000,
			Branching:     "lowest-id",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Report: ReportConfig{
			Format:     "ascii",
			Components: false,
			LowerBound: true,
		},
	}
}

// SetDefaults registers every default with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("graph.team_count", defaults.Graph.TeamCount)
	viper.SetDefault("graph.employees_per_side", defaults.Graph.EmployeesPerSide)
	viper.SetDefault("graph.seed", defaults.Graph.Seed)

	viper.SetDefault("search.workers", defaults.Search.Workers)
	viper.SetDefault("search.max_expansions", defaults.Search.MaxExpansions)
	viper.SetDefault("search.branching", defaults.Search.Branching)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)

	viper.SetDefault("report.format", defaults.Report.Format)
	viper.SetDefault("report.components", defaults.Report.Components)
	viper.SetDefault("report.lower_bound", defaults.Report.LowerBound)
}

// Init wires viper: defaults, the config file (explicit path or
// bicover.yaml in the usual directories) and BICOVER_* environment
// variables. A missing config file is not an error.
func Init(cfgFile string) error {
	SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("bicover")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("BICOVER")
	// BICOVER_GRAPH_TEAM_COUNT for graph.team_count
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Load unmarshals the current viper state and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bicover")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}

	return filepath.Join(home, ".config", "bicover")
}
