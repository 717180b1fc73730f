package statvis

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// SetAlpha returns c with its alpha replaced by a in [0,1].
func SetAlpha(c color.Color, a float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(min(max(a, 0), 1)*0xff + 0.5)
	return n
}

// Lerp interpolates linearly between the colours a and b; t is clamped
// to [0,1].
func Lerp(a, b color.Color, t float64) color.Color {
	t = min(max(t, 0), 1)
	ca := color.NRGBAModel.Convert(a).(color.NRGBA)
	cb := color.NRGBAModel.Convert(b).(color.NRGBA)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)) + 0.5)
	}
	return color.NRGBA{mix(ca.R, cb.R), mix(ca.G, cb.G), mix(ca.B, cb.B), mix(ca.A, cb.A)}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":        {0xff, 0x00, 0x00, 0xff},
	"darkred":    {0x8b, 0x00, 0x00, 0xff},
	"green":      {0x00, 0x80, 0x00, 0xff},
	"darkgreen":  {0x00, 0x64, 0x00, 0xff},
	"blue":       {0x00, 0x00, 0xff, 0xff},
	"steelblue":  {0x46, 0x82, 0xb4, 0xff},
	"orange":     {0xff, 0xa5, 0x00, 0xff},
	"darkorange": {0xff, 0x8c, 0x00, 0xff},
	"cyan":       {0x00, 0xff, 0xff, 0xff},
	"magenta":    {0xff, 0x00, 0xff, 0xff},
	"yellow":     {0xff, 0xff, 0x00, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"gray20":     {0x33, 0x33, 0x33, 0xff},
	"gray40":     {0x66, 0x66, 0x66, 0xff},
	"gray":       {0x80, 0x80, 0x80, 0xff},
	"grey":       {0x80, 0x80, 0x80, 0xff},
	"gray60":     {0x99, 0x99, 0x99, 0xff},
	"gray80":     {0xcc, 0xcc, 0xcc, 0xff},
	"black":      {0x00, 0x00, 0x00, 0xff},
}

// unknownColor is used for colour names String2Color cannot parse.
var unknownColor = color.RGBA{0xaa, 0x66, 0x77, 0x7f}

// String2Color parses "#rrggbb", "#rrggbbaa" or one of the BuiltinColors.
// Anything else yields a semi-transparent pink.
func String2Color(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		return unknownColor
	}
	return c
}

// ParseColor is String2Color reporting unknown colours as ErrInvalidParameter.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		rgba := [4]uint8{3: 0xff}
		for i := 0; 1+2*i < len(s); i++ {
			x, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("ParseColor: %q: %w", s, ErrInvalidParameter)
			}
			rgba[i] = uint8(x)
		}
		return color.NRGBA{rgba[0], rgba[1], rgba[2], rgba[3]}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("ParseColor: unknown colour %q: %w", s, ErrInvalidParameter)
}
