package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vdobler/statvis"
)

const (
	flagOut    = "out"
	flagOutAbb = "o"

	defaultRenderWidget = "boxplot"
	renderFilePerm      = 0o644
)

var errUnknownWidget = errors.New("unknown widget")

func widgetNames() string {
	names := make([]string, 0, len(statvis.Geoms))
	for name := range statvis.Geoms {
		names = append(names, name)
	}

	sort.Strings(names)

	return strings.Join(names, ", ")
}

func newRenderCommand(g *globals) *cobra.Command {
	var (
		widget string
		out    string
		bins   int
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw a widget as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			geom, ok := statvis.Geoms[widget]
			if !ok {
				return fmt.Errorf("%w: %q (have %s)", errUnknownWidget, widget, widgetNames())
			}

			opts := g.cfg.Widget
			if cmd.Flags().Changed(flagBins) {
				opts.BinCount = bins
			}

			w, err := statvis.NewWidget(geom, openSample(args[0], cmd.InOrStdin()), opts)
			if err != nil {
				return err
			}

			err = w.Build(cmd.Context())
			if err != nil {
				return err
			}

			return renderTo(w, out, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&widget, flagWidget, defaultRenderWidget, "widget to draw: "+widgetNames())
	cmd.Flags().StringVarP(&out, flagOut, flagOutAbb, stdinName, `output SVG file, "-" for stdout`)
	cmd.Flags().IntVar(&bins, flagBins, 0, "number of bins of binned widgets")

	return cmd
}

func renderTo(w *statvis.Widget, path string, stdout io.Writer) (err error) {
	if path == stdinName {
		return w.Render(stdout)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, renderFilePerm)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return w.Render(f)
}
