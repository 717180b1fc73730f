package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis"
	"github.com/vdobler/statvis/internal/report"
	"github.com/vdobler/statvis/stat"
)

const flagBins = "bins"

func newHistogramCommand(g *globals) *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "histogram FILE",
		Short: "Count values in equally wide bins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(flagBins) && g.cfg.Widget.BinCount > 0 {
				bins = g.cfg.Widget.BinCount
			}

			values, err := openSample(args[0], cmd.InOrStdin()).Resolve(cmd.Context())
			if err != nil {
				return err
			}

			h, err := stat.HistogramBins(values, bins)
			if err != nil {
				return fmt.Errorf("histogram: %w", err)
			}

			return g.write(cmd.OutOrStdout(), &report.HistogramResult{
				Width:  h.Width(),
				Ticks:  h.Ticks,
				Counts: h.Counts,
			})
		},
	}

	cmd.Flags().IntVar(&bins, flagBins, statvis.GeomHistogram{}.Info().BinCount, "number of bins")

	return cmd
}
