package statvis

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Fence anchors understood by Options.Fences.
const (
	FencesMedian   = "median"
	FencesQuartile = "quartile"
)

// Options configure a widget. Zero Width, Height and BinCount select the
// defaults of the widget's geom, other zero fields except NumDividers
// and StartIndices those of DefaultOptions.
type Options struct {
	// NumDividers is the number of draggable dividers of the divider
	// widgets.
	NumDividers int `mapstructure:"num_dividers" yaml:"num_dividers" json:"num_dividers"`

	// GroupSize is the number of consecutive values aggregated into one
	// bar of the box slider.
	GroupSize int `mapstructure:"group_size" yaml:"group_size" json:"group_size"`

	// StartIndices are the initial divider positions. If empty the
	// dividers are placed at the quantiles j/(NumDividers+1) of the sample.
	StartIndices []int `mapstructure:"start_indices" yaml:"start_indices" json:"start_indices"`

	BinCount     int      `mapstructure:"bin_count" yaml:"bin_count" json:"bin_count"`
	ColorPalette []string `mapstructure:"color_palette" yaml:"color_palette" json:"color_palette"`

	Width          float64 `mapstructure:"width" yaml:"width" json:"width"`
	Height         float64 `mapstructure:"height" yaml:"height" json:"height"`
	Padding        float64 `mapstructure:"padding" yaml:"padding" json:"padding"`
	BarColor       string  `mapstructure:"bar_color" yaml:"bar_color" json:"bar_color"`
	SliderColor    string  `mapstructure:"slider_color" yaml:"slider_color" json:"slider_color"`
	BarOffsetRatio float64 `mapstructure:"bar_offset_ratio" yaml:"bar_offset_ratio" json:"bar_offset_ratio"`

	// Fences is FencesMedian or FencesQuartile.
	Fences string `mapstructure:"fences" yaml:"fences" json:"fences"`

	Theme Theme `mapstructure:"-" yaml:"-" json:"-"`

	// Logger receives build and drag events. Nil discards them.
	Logger *slog.Logger `mapstructure:"-" yaml:"-" json:"-"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		NumDividers:    2,
		GroupSize:      10,
		ColorPalette:   []string{"darkgreen", "darkorange", "darkred"},
		Padding:        6,
		BarColor:       "#334433",
		SliderColor:    "grey",
		BarOffsetRatio: 0.1,
		Fences:         FencesMedian,
		Theme:          DefaultTheme,
	}
}

// withDefaults fills the zero fields of o from the geom and from
// DefaultOptions. NumDividers and StartIndices are taken as given.
func (o Options) withDefaults(info GeomInfo) Options {
	def := DefaultOptions()
	if o.Width == 0 {
		o.Width = info.Width
	}
	if o.Height == 0 {
		o.Height = info.Height
	}
	if o.BinCount == 0 {
		o.BinCount = info.BinCount
	}
	if o.GroupSize == 0 {
		o.GroupSize = def.GroupSize
	}
	if o.Padding == 0 {
		o.Padding = def.Padding
	}
	if o.BarOffsetRatio == 0 {
		o.BarOffsetRatio = def.BarOffsetRatio
	}
	if o.BarColor == "" {
		o.BarColor = def.BarColor
	}
	if o.SliderColor == "" {
		o.SliderColor = def.SliderColor
	}
	if o.Fences == "" {
		o.Fences = def.Fences
	}
	if len(o.ColorPalette) == 0 {
		o.ColorPalette = def.ColorPalette
	}
	if o.Theme == (Theme{}) {
		o.Theme = def.Theme
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	o.StartIndices = slices.Clone(o.StartIndices)
	o.ColorPalette = slices.Clone(o.ColorPalette)
	return o
}

// Validate checks o for impossible values.
func (o Options) Validate() error {
	switch {
	case o.NumDividers < 0:
		return fmt.Errorf("Validate: %d dividers: %w", o.NumDividers, ErrInvalidParameter)
	case o.GroupSize < 1:
		return fmt.Errorf("Validate: group size %d: %w", o.GroupSize, ErrInvalidParameter)
	case o.BinCount < 0:
		return fmt.Errorf("Validate: %d bins: %w", o.BinCount, ErrInvalidParameter)
	case o.Width < 0 || o.Height < 0:
		return fmt.Errorf("Validate: size %gx%g: %w", o.Width, o.Height, ErrInvalidParameter)
	case o.Padding < 0:
		return fmt.Errorf("Validate: padding %g: %w", o.Padding, ErrInvalidParameter)
	case !(o.BarOffsetRatio >= 0 && o.BarOffsetRatio < 1):
		return fmt.Errorf("Validate: bar offset ratio %g: %w", o.BarOffsetRatio, ErrInvalidParameter)
	}
	switch o.Fences {
	case "", FencesMedian, FencesQuartile:
	default:
		return fmt.Errorf("Validate: unknown fences %q: %w", o.Fences, ErrInvalidParameter)
	}

	if len(o.StartIndices) > 0 && len(o.StartIndices) != o.NumDividers {
		return fmt.Errorf("Validate: %d start indices for %d dividers: %w",
			len(o.StartIndices), o.NumDividers, ErrInvalidDivider)
	}
	for i, s := range o.StartIndices {
		if s < 0 || (i > 0 && s < o.StartIndices[i-1]) {
			return fmt.Errorf("Validate: start indices %v: %w", o.StartIndices, ErrInvalidDivider)
		}
	}
	for _, c := range append([]string{o.BarColor, o.SliderColor}, o.ColorPalette...) {
		if c == "" {
			continue
		}
		if _, err := ParseColor(c); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}
	return nil
}
