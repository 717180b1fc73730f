package statvis

import (
	"fmt"
	"io"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// RenderSVG draws grobs onto a width x height SVG canvas and writes it
// to w.
func RenderSVG(w io.Writer, width, height float64, grobs []Grob) error {
	if !(width > 0 && height > 0) {
		return fmt.Errorf("RenderSVG: size %gx%g: %w", width, height, ErrInvalidParameter)
	}
	c := vgsvg.New(vg.Length(width), vg.Length(height))
	vp := Viewport{
		Width:  vg.Length(width),
		Height: vg.Length(height),
		Canvas: c,
	}
	for _, g := range grobs {
		g.Draw(vp)
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("RenderSVG: %w", err)
	}
	return nil
}
