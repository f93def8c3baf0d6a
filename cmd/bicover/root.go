package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/bicover/internal/config"
	"github.com/katalvlaran/bicover/internal/logging"
)

// app carries the loaded configuration from the root pre-run to the
// subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bicover",
		Short: "Small team covers for bipartite employee graphs",
		Long: `bicover picks a small set of employees such that every two-person team
has at least one member selected. Teams are split into connected components
and each component is searched best-first.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			bindFlags(cmd)
			return a.load(cmd.ErrOrStderr())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/bicover/bicover.yaml)")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-format", "", "log format: text or json")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// load reads the configuration and installs the logger.
func (a *app) load(logOut io.Writer) error {
	if err := config.Init(a.cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	return logging.Init(cfg.Logging, logOut)
}

// flagKeys maps command-line flags to config keys. Flags override the
// config file and environment only when set explicitly.
var flagKeys = map[string]string{
	"log-level":      "logging.level",
	"log-format":     "logging.format",
	"team-count":     "graph.team_count",
	"side":           "graph.employees_per_side",
	"seed":           "graph.seed",
	"workers":        "search.workers",
	"max-expansions": "search.max_expansions",
	"branching":      "search.branching",
	"format":         "report.format",
	"components":     "report.components",
	"lower-bound":    "report.lower_bound",
}

// bindFlags binds the flags of the executing command. Several commands
// share flag names, so binding happens once the command is known.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			_ = viper.BindPFlag(key, f)
		}
	})
}

// addGraphFlags registers the instance-generation flags shared by solve
// and generate.
func addGraphFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("team-count", 0, "number of random teams")
	f.Int("side", 0, "employees per side")
	f.Int64("seed", 0, "generator seed (0 = fixed default stream)")
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bicover version",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "bicover "+version)
		},
	}
}
