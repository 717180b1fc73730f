package report

import (
	"fmt"

	"github.com/vdobler/statvis/stat"
)

// SummaryResult is the output of the summary command.
type SummaryResult struct {
	Summary  stat.Summary `json:"summary" yaml:"summary"`
	Inner    [2]float64   `json:"inner_fence" yaml:"inner_fence"`
	Outer    [2]float64   `json:"outer_fence" yaml:"outer_fence"`
	Whiskers [2]float64   `json:"whiskers" yaml:"whiskers"`

	InnerOutliers []float64 `json:"inner_outliers" yaml:"inner_outliers"`
	OuterOutliers []float64 `json:"outer_outliers" yaml:"outer_outliers"`
}

// NewSummaryResult collects a summary with its fences and outliers.
func NewSummaryResult(s stat.Summary, f stat.Fences, o stat.Outliers) *SummaryResult {
	return &SummaryResult{
		Summary:       s,
		Inner:         f.Inner,
		Outer:         f.Outer,
		Whiskers:      o.Whiskers,
		InnerOutliers: nonNil(o.InnerFence),
		OuterOutliers: nonNil(o.OuterFence),
	}
}

// Tables implements Tabular.
func (r *SummaryResult) Tables() []Table {
	s := r.Summary

	return []Table{{
		Title:  "Summary",
		Header: []any{"statistic", "value"},
		Rows: [][]any{
			{"n", s.N},
			{"min", num(s.Min)},
			{"q25", num(s.Q25)},
			{"median", num(s.Median)},
			{"mean", num(s.Mean)},
			{"q75", num(s.Q75)},
			{"max", num(s.Max)},
			{"iqr", num(s.IQR)},
			{"inner fence", pair(r.Inner)},
			{"outer fence", pair(r.Outer)},
			{"whiskers", pair(r.Whiskers)},
			{"inner outliers", list(r.InnerOutliers)},
			{"outer outliers", list(r.OuterOutliers)},
		},
	}}
}

// HistogramResult is the output of the histogram command.
type HistogramResult struct {
	Width  float64   `json:"bin_width" yaml:"bin_width"`
	Ticks  []float64 `json:"ticks" yaml:"ticks"`
	Counts []int     `json:"counts" yaml:"counts"`
}

// Tables implements Tabular.
func (r *HistogramResult) Tables() []Table {
	t := Table{
		Title:  fmt.Sprintf("Histogram (bin width %s)", num(r.Width)),
		Header: []any{"bin", "from", "to", "count"},
	}
	for i, c := range r.Counts {
		t.Rows = append(t.Rows, []any{i, num(r.Ticks[i]), num(r.Ticks[i+1]), c})
	}

	return []Table{t}
}

// AggregateResult is the output of the aggregate command.
type AggregateResult struct {
	GroupSize int       `json:"group_size" yaml:"group_size"`
	Means     []float64 `json:"means" yaml:"means"`
}

// Tables implements Tabular.
func (r *AggregateResult) Tables() []Table {
	t := Table{
		Title:  fmt.Sprintf("Group means (group size %d)", r.GroupSize),
		Header: []any{"group", "mean"},
	}
	for i, m := range r.Means {
		t.Rows = append(t.Rows, []any{i, num(m)})
	}

	return []Table{t}
}

// RegionResult is one region between two dividers.
type RegionResult struct {
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// DivideResult is the output of the divide command.
type DivideResult struct {
	NumBins  int            `json:"num_bins" yaml:"num_bins"`
	Dividers []int          `json:"dividers" yaml:"dividers"`
	Values   []float64      `json:"values,omitempty" yaml:"values,omitempty"`
	Regions  []RegionResult `json:"regions" yaml:"regions"`
}

// Tables implements Tabular.
func (r *DivideResult) Tables() []Table {
	dividers := Table{Title: fmt.Sprintf("Dividers over %d bins", r.NumBins), Header: []any{"divider", "index"}}
	if len(r.Values) > 0 {
		dividers.Header = append(dividers.Header, "value")
	}

	for i, d := range r.Dividers {
		row := []any{i, d}
		if i < len(r.Values) {
			row = append(row, num(r.Values[i]))
		}

		dividers.Rows = append(dividers.Rows, row)
	}

	regions := Table{Title: "Regions", Header: []any{"region", "start", "end", "color"}}
	for i, reg := range r.Regions {
		regions.Rows = append(regions.Rows, []any{i, reg.Start, reg.End, reg.Color})
	}

	return []Table{dividers, regions}
}

func num(x float64) string { return fmt.Sprintf("%.4g", x) }

func pair(p [2]float64) string { return fmt.Sprintf("[%s, %s]", num(p[0]), num(p[1])) }

func list(v []float64) string {
	if len(v) == 0 {
		return "-"
	}

	return fmt.Sprint(v)
}

func nonNil(v []float64) []float64 {
	if v == nil {
		return []float64{}
	}

	return v
}
