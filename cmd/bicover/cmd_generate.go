package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bicover/builder"
	"github.com/katalvlaran/bicover/internal/config"
	"github.com/katalvlaran/bicover/internal/logging"
	"github.com/katalvlaran/bicover/internal/teamfile"
	"github.com/katalvlaran/bicover/team"
)

func newGenerateCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random team instance as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := generate(a.cfg.Graph)
			if err != nil {
				return err
			}
			if output == "-" {
				return teamfile.Encode(cmd.OutOrStdout(), s)
			}
			if err := teamfile.Save(output, s); err != nil {
				return fmt.Errorf("save instance: %w", err)
			}
			logging.New("generate").Info("instance written",
				"path", output, "teams", s.Len(), "employees_per_side", s.SideSize())

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path, - for stdout (required)")
	_ = cmd.MarkFlagRequired("output")
	addGraphFlags(cmd)

	return cmd
}

// generate draws a random instance per g.
func generate(g config.GraphConfig) (*team.Store, error) {
	s, err := builder.RandomTeams(g.EmployeesPerSide, g.TeamCount, builder.WithSeed(g.Seed))
	if err != nil {
		return nil, fmt.Errorf("generate instance: %w", err)
	}

	return s, nil
}
