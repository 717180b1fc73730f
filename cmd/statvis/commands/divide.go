package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis"
	"github.com/vdobler/statvis/divider"
	"github.com/vdobler/statvis/internal/report"
)

const (
	flagStarts = "starts"
	flagMove   = "move"
	flagWidget = "widget"

	defaultDivideBins   = 10
	defaultDivideWidget = "cluster"
)

// ErrBadMove is returned for a --move value not of the form i:target.
var ErrBadMove = errors.New("move must look like divider:bin")

// ErrNoDividerWidget is returned when --widget names a widget without
// dividers.
var ErrNoDividerWidget = errors.New("widget has no dividers")

type move struct {
	divider, target int
}

func parseMove(s string) (move, error) {
	i, t, ok := strings.Cut(s, ":")
	if !ok {
		return move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}

	d, err := strconv.Atoi(strings.TrimSpace(i))
	if err != nil {
		return move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}

	target, err := strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		return move{}, fmt.Errorf("%w: %q", ErrBadMove, s)
	}

	return move{d, target}, nil
}

func newDivideCommand(g *globals) *cobra.Command {
	var (
		bins   int
		starts []int
		moves  []string
		widget string
	)

	cmd := &cobra.Command{
		Use:   "divide [FILE]",
		Short: "Move dividers over bins and print the resulting regions",
		Long: `Divide sets up dividers over a number of bins and applies the given
moves in order. Each move "i:b" drags divider i towards bin b; it stops
next to its neighbours.

Without FILE only the dividers are modelled. With FILE the divider widget
selected by --widget is built from the sample, and the dividers also
report the tick value they sit on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := make([]move, len(moves))
			for i, m := range moves {
				var err error

				parsed[i], err = parseMove(m)
				if err != nil {
					return err
				}
			}

			opts := g.cfg.Widget
			if cmd.Flags().Changed(flagStarts) {
				opts.StartIndices = starts
				opts.NumDividers = len(starts)
			}

			if len(args) == 0 {
				if !cmd.Flags().Changed(flagBins) && opts.BinCount > 0 {
					bins = opts.BinCount
				}

				result, err := divideBins(bins, opts, parsed)
				if err != nil {
					return err
				}

				return g.write(cmd.OutOrStdout(), result)
			}

			if cmd.Flags().Changed(flagBins) {
				opts.BinCount = bins
			}

			geom, ok := statvis.Geoms[widget]
			if !ok {
				return fmt.Errorf("%w: %q", errUnknownWidget, widget)
			}

			if !geom.Info().Dividers {
				return fmt.Errorf("%w: %q", ErrNoDividerWidget, widget)
			}

			w, err := statvis.NewWidget(geom, openSample(args[0], cmd.InOrStdin()), opts)
			if err != nil {
				return err
			}

			result, err := divideWidget(cmd, w, parsed)
			if err != nil {
				return err
			}

			return g.write(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVar(&bins, flagBins, defaultDivideBins, "number of bins")
	cmd.Flags().IntSliceVar(&starts, flagStarts, nil, "initial divider bins, e.g. 2,5,8")
	cmd.Flags().StringArrayVar(&moves, flagMove, nil, "move divider i towards bin b, as i:b (repeatable)")
	cmd.Flags().StringVar(&widget, flagWidget, defaultDivideWidget, "divider widget used with FILE: cluster, boxslider or slider")

	return cmd
}

// divideBins runs the moves on a bare divider model. Without start
// indices the dividers are spread evenly. An empty palette falls back to
// the default one, as it does for widgets.
func divideBins(bins int, opts statvis.Options, moves []move) (*report.DivideResult, error) {
	starts := opts.StartIndices
	if len(starts) == 0 {
		k := opts.NumDividers
		starts = make([]int, k)

		for j := range starts {
			starts[j] = (j + 1) * bins / (k + 1)
		}
	}

	m, err := divider.New(starts, bins)
	if err != nil {
		return nil, fmt.Errorf("divide: %w", err)
	}

	asBin := func(pos float64) int { return int(pos) }
	for _, mv := range moves {
		_, _, err := m.Move(mv.divider, float64(mv.target), asBin)
		if err != nil {
			return nil, fmt.Errorf("divide: %w", err)
		}
	}

	palette := opts.ColorPalette
	if len(palette) == 0 {
		palette = statvis.DefaultOptions().ColorPalette
	}

	result := &report.DivideResult{NumBins: m.NumBins(), Dividers: m.Indices()}
	for i, r := range m.Regions() {
		result.Regions = append(result.Regions, report.RegionResult{
			Start: r.Start,
			End:   r.End,
			Color: palette[i%len(palette)],
		})
	}

	return result, nil
}

// divideWidget builds w and drags its dividers onto the pixel position
// of the target ticks.
func divideWidget(cmd *cobra.Command, w *statvis.Widget, moves []move) (*report.DivideResult, error) {
	err := w.Build(cmd.Context())
	if err != nil {
		return nil, err
	}

	for _, mv := range moves {
		layer, err := w.Layer()
		if err != nil {
			return nil, err
		}

		target := min(max(mv.target, 0), len(layer.TickPos)-1)

		drag, err := w.BeginDrag(mv.divider)
		if err != nil {
			return nil, fmt.Errorf("divide: %w", err)
		}

		_, _, moveErr := drag.Move(layer.TickPos[target])

		_, endErr := drag.End()
		if err := errors.Join(moveErr, endErr); err != nil {
			return nil, fmt.Errorf("divide: %w", err)
		}
	}

	layer, err := w.Layer()
	if err != nil {
		return nil, err
	}

	result := &report.DivideResult{
		NumBins:  layer.Dividers.NumBins(),
		Dividers: layer.Dividers.Indices(),
		Values:   layer.DividerValues(),
	}
	for _, r := range layer.Regions {
		result.Regions = append(result.Regions, report.RegionResult{Start: r.Start, End: r.End, Color: r.Color})
	}

	return result, nil
}
