package statvis

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
)

// Grob is a graphical object in pixel coordinates with the origin in the
// upper left corner and y growing downward.
type Grob interface {
	Draw(vp Viewport)
}

// Viewport is a rectangle on a canvas.
type Viewport struct {
	X0, Y0        vg.Length
	Width, Height vg.Length
	Canvas        vg.Canvas
}

// X converts a horizontal pixel position into canvas coordinates.
func (vp Viewport) X(x float64) vg.Length { return vp.X0 + vg.Length(x) }

// Y converts a vertical pixel position, measured from the top, into
// canvas coordinates which grow upward.
func (vp Viewport) Y(y float64) vg.Length { return vp.Y0 + vp.Height - vg.Length(y) }

func (vp Viewport) Point(x, y float64) vg.Point { return vg.Point{X: vp.X(x), Y: vp.Y(y)} }

func (vp Viewport) String() string {
	return fmt.Sprintf("Viewport(%.1f,%.1f %.1fx%.1f)", vp.X0, vp.Y0, vp.Width, vp.Height)
}

// stroke draws path with col and width, skipping invisible strokes.
func (vp Viewport) stroke(path vg.Path, col color.Color, width float64) {
	if col == nil || width <= 0 {
		return
	}
	vp.Canvas.SetColor(col)
	vp.Canvas.SetLineWidth(vg.Length(width))
	vp.Canvas.SetLineDash(nil, 0)
	vp.Canvas.Stroke(path)
}

func (vp Viewport) fill(path vg.Path, col color.Color) {
	if col == nil {
		return
	}
	vp.Canvas.SetColor(col)
	vp.Canvas.Fill(path)
}

// -------------------------------------------------------------------------
// Grob Rect

type GrobRect struct {
	XMin, YMin, XMax, YMax float64
	Fill                   color.Color
	Stroke                 color.Color
	Width                  float64 // stroke width
}

func (rect GrobRect) Draw(vp Viewport) {
	var p vg.Path
	p.Move(vp.Point(rect.XMin, rect.YMin))
	p.Line(vp.Point(rect.XMax, rect.YMin))
	p.Line(vp.Point(rect.XMax, rect.YMax))
	p.Line(vp.Point(rect.XMin, rect.YMax))
	p.Close()
	vp.fill(p, rect.Fill)
	vp.stroke(p, rect.Stroke, rect.Width)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	X0, Y0, X1, Y1 float64
	Color          color.Color
	Width          float64
}

func (line GrobLine) Draw(vp Viewport) {
	var p vg.Path
	p.Move(vp.Point(line.X0, line.Y0))
	p.Line(vp.Point(line.X1, line.Y1))
	vp.stroke(p, line.Color, line.Width)
}

// -------------------------------------------------------------------------
// Grob Path

// Point is a pixel position.
type Point struct{ X, Y float64 }

// GrobPath is a polyline, or a polygon if Closed.
type GrobPath struct {
	Points []Point
	Closed bool
	Color  color.Color
	Fill   color.Color // only used if Closed
	Width  float64
}

func (path GrobPath) Draw(vp Viewport) {
	if len(path.Points) < 2 {
		return
	}
	var p vg.Path
	p.Move(vp.Point(path.Points[0].X, path.Points[0].Y))
	for _, pt := range path.Points[1:] {
		p.Line(vp.Point(pt.X, pt.Y))
	}
	if path.Closed {
		p.Close()
		vp.fill(p, path.Fill)
	}
	vp.stroke(p, path.Color, path.Width)
}

// -------------------------------------------------------------------------
// Grob Circle

type GrobCircle struct {
	X, Y, R float64
	Stroke  color.Color
	Fill    color.Color
	Width   float64
}

func (circle GrobCircle) Draw(vp Viewport) {
	if circle.R <= 0 {
		return
	}
	c := vp.Point(circle.X, circle.Y)
	var p vg.Path
	p.Move(vg.Point{X: c.X + vg.Length(circle.R), Y: c.Y})
	p.Arc(c, vg.Length(circle.R), 0, 2*math.Pi)
	p.Close()
	vp.fill(p, circle.Fill)
	vp.stroke(p, circle.Stroke, circle.Width)
}
