package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis/internal/report"
	"github.com/vdobler/statvis/stat"
)

const (
	flagGroup     = "group"
	flagMinGroups = "min-groups"
)

func newAggregateCommand(g *globals) *cobra.Command {
	var groupSize, minGroups int

	cmd := &cobra.Command{
		Use:   "aggregate FILE",
		Short: "Replace runs of consecutive values by their mean",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(flagGroup) {
				groupSize = g.cfg.Widget.GroupSize
			}

			if !cmd.Flags().Changed(flagMinGroups) {
				minGroups = g.cfg.Widget.NumDividers + 1
			}

			values, err := openSample(args[0], cmd.InOrStdin()).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			means, size, err := stat.Aggregate(values, groupSize, minGroups)
			if err != nil {
				return fmt.Errorf("aggregate: %w", err)
			}

			if size != groupSize {
				g.logger.Info("too few values, not aggregating", "n", len(values), "group", groupSize, "min_groups", minGroups)
			}

			return g.write(cmd.OutOrStdout(), &report.AggregateResult{GroupSize: size, Means: means})
		},
	}

	cmd.Flags().IntVar(&groupSize, flagGroup, 0, "values per group (default from config)")
	cmd.Flags().IntVar(&minGroups, flagMinGroups, 0, "minimum number of groups (default dividers+1)")

	return cmd
}
