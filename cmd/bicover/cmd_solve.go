package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bicover/cover"
	"github.com/katalvlaran/bicover/internal/config"
	"github.com/katalvlaran/bicover/internal/logging"
	"github.com/katalvlaran/bicover/internal/report"
	"github.com/katalvlaran/bicover/internal/teamfile"
	"github.com/katalvlaran/bicover/matching"
	"github.com/katalvlaran/bicover/team"
)

func newSolveCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Search a small team cover and print the report",
		Long: `solve loads an instance (--input) or draws a random one from the graph
settings, searches a cover per connected component and prints a summary.
The cover is a heuristic result; the König minimum cover computed from a
maximum matching shows how far from optimal it is.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, a.cfg, input)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input", "i", "", "instance YAML to solve instead of a random one")
	f.Int("workers", 0, "components searched at once (0 = one per CPU)")
	f.Int("max-expansions", 0, "per-component expansion budget (0 = unlimited)")
	f.String("branching", "", "branching rule: lowest-id or highest-degree")
	f.String("format", "", "report format: ascii or markdown")
	f.Bool("components", false, "list every component in the report")
	f.Bool("lower-bound", true, "report the exact minimum cover size (König)")
	addGraphFlags(cmd)

	return cmd
}

func runSolve(cmd *cobra.Command, cfg *config.Config, input string) error {
	log := logging.New("solve")

	s, err := loadInstance(cfg.Graph, input)
	if err != nil {
		return err
	}
	log.Info("instance ready", "teams", s.Len(), "employees_per_side", s.SideSize())

	branching, err := cover.ParseBranching(cfg.Search.Branching)
	if err != nil {
		return err
	}
	mode, err := report.ParseMode(cfg.Report.Format)
	if err != nil {
		return err
	}

	sol, err := cover.Solve(s,
		cover.WithContext(cmd.Context()),
		cover.WithMaxExpansions(cfg.Search.MaxExpansions),
		cover.WithBranching(branching),
		cover.WithWorkers(cfg.Search.Workers),
		cover.WithLogger(logging.New("cover")),
	)
	if errors.Is(err, cover.ErrBudgetExceeded) {
		return fmt.Errorf("%w; raise search.max_expansions or use a sparser instance", err)
	}
	if err != nil {
		return err
	}
	log.Info("cover found", "size", sol.Size(), "components", len(sol.Components), "elapsed", sol.Elapsed)

	var m *matching.Matching
	if cfg.Report.LowerBound {
		m = matching.Maximum(s)
	}

	return report.Write(cmd.OutOrStdout(), mode, sol, report.Summarize(s, sol, m), cfg.Report.Components)
}

func loadInstance(g config.GraphConfig, input string) (*team.Store, error) {
	if input == "" {
		return generate(g)
	}
	s, err := teamfile.Load(input)
	if err != nil {
		return nil, fmt.Errorf("load instance: %w", err)
	}

	return s, nil
}
