package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis"
	"github.com/vdobler/statvis/internal/report"
	"github.com/vdobler/statvis/stat"
)

func newSummaryCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "summary FILE",
		Short: "Print summary statistics, fences and outliers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := openSample(args[0], cmd.InOrStdin()).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			result, err := summarize(values, g.cfg.Widget.Fences)
			if err != nil {
				return err
			}

			g.logger.Debug("summary", "n", result.Summary.N, "fences", g.cfg.Widget.Fences)

			return g.write(cmd.OutOrStdout(), result)
		},
	}
}

func summarize(values []float64, anchor string) (*report.SummaryResult, error) {
	s, err := stat.Summarize(values)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	fences := stat.IQRFences
	if anchor == statvis.FencesQuartile {
		fences = stat.TukeyFences
	}

	f, err := fences(sorted)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	o, err := stat.ClassifyOutliers(sorted, f)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	return report.NewSummaryResult(s, f, o), nil
}
