package statvis

// Theme holds the fixed colours of the widgets which are not part of
// Options. Colours are anything String2Color understands.
type Theme struct {
	// Box chart bars shade from Low[0] (most negative) to Low[1] (zero)
	// and from High[0] (zero) to High[1] (most positive).
	Low, High [2]string

	Stroke     string // outlines, box plot lines and the line chart
	Background string // slider track
	ZeroLine   string
	Outlier    string
}

var DefaultTheme = Theme{
	Low:        [2]string{"green", "darkgreen"},
	High:       [2]string{"darkred", "red"},
	Stroke:     "black",
	Background: "gray80",
	ZeroLine:   "gray60",
	Outlier:    "steelblue",
}
