package stat_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/statvis/stat"
)

var spiky = []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 100}

func TestMedian(t *testing.T) {
	tests := []struct {
		in   []float64
		want float64
	}{
		{[]float64{7}, 7},
		{[]float64{1, 2}, 1.5},
		{[]float64{1, 2, 3}, 2},
		{[]float64{1, 2, 3, 4}, 2.5},
		{[]float64{-3, -1, 0, 10, 11}, 0},
		{spiky, 5.5},
	}
	for i, tc := range tests {
		got, err := stat.Median(tc.in)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.want, got, "case %d: median of %v", i, tc.in)
	}
}

func TestMedianRejectsBadInput(t *testing.T) {
	_, err := stat.Median(nil)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)

	_, err = stat.Median([]float64{3, 1, 2})
	assert.ErrorIs(t, err, stat.ErrInvalidInput, "unsorted")

	_, err = stat.Median([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, stat.ErrInvalidInput, "NaN")
}

func TestMean(t *testing.T) {
	m, err := stat.Mean([]float64{4, 1, 7})
	require.NoError(t, err)
	assert.Equal(t, 4.0, m)

	_, err = stat.Mean([]float64{})
	assert.ErrorIs(t, err, stat.ErrInvalidInput)

	_, err = stat.Mean([]float64{1, math.Inf(-1)})
	assert.ErrorIs(t, err, stat.ErrInvalidInput)
}

func TestQuantile(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 3.25},
		{0.5, 5.5},
		{0.75, 7.75},
		{1, 100},
	}
	for _, tc := range tests {
		got, err := stat.Quantile(spiky, tc.p)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "p=%v", tc.p)
	}
}

func TestQuantileBounds(t *testing.T) {
	samples := [][]float64{
		{42},
		{-1, -1, -1},
		{0.5, 2, 2.5, 9},
		spiky,
	}
	for _, s := range samples {
		q0, err := stat.Quantile(s, 0)
		require.NoError(t, err)
		q1, err := stat.Quantile(s, 1)
		require.NoError(t, err)
		assert.Equal(t, s[0], q0, "quantile(0) of %v", s)
		assert.Equal(t, s[len(s)-1], q1, "quantile(1) of %v", s)
	}
}

func TestQuantileBadProbability(t *testing.T) {
	for _, p := range []float64{-0.01, 1.01, math.NaN()} {
		_, err := stat.Quantile(spiky, p)
		assert.ErrorIs(t, err, stat.ErrInvalidParameter, "p=%v", p)
	}
	_, err := stat.Quantile(nil, 0.5)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)
}

func TestSummarize(t *testing.T) {
	in := []float64{9, 100, 1, 8, 2, 7, 3, 6, 4, 5}
	s, err := stat.Summarize(in)
	require.NoError(t, err)

	assert.Equal(t, 10, s.N)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 100.0, s.Max)
	assert.InDelta(t, 14.5, s.Mean, 1e-12)
	assert.Equal(t, 5.5, s.Median)
	assert.InDelta(t, 3.25, s.Q25, 1e-12)
	assert.InDelta(t, 7.75, s.Q75, 1e-12)
	assert.InDelta(t, 4.5, s.IQR, 1e-12)

	// Input left untouched.
	assert.Equal(t, 9.0, in[0])
}

func TestIQRFences(t *testing.T) {
	f, err := stat.IQRFences(spiky)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, f.IQR, 1e-12)
	assert.InDelta(t, 5.5-6.75, f.Inner[0], 1e-12)
	assert.InDelta(t, 5.5+6.75, f.Inner[1], 1e-12)
	assert.InDelta(t, 5.5-13.5, f.Outer[0], 1e-12)
	assert.InDelta(t, 5.5+13.5, f.Outer[1], 1e-12)
}

func TestTukeyFences(t *testing.T) {
	f, err := stat.TukeyFences(spiky)
	require.NoError(t, err)
	assert.InDelta(t, 3.25, f.Q25, 1e-12)
	assert.InDelta(t, 7.75, f.Q75, 1e-12)
	assert.InDelta(t, -3.5, f.Inner[0], 1e-12)
	assert.InDelta(t, 14.5, f.Inner[1], 1e-12)
}

func TestClassifyOutliersSpiky(t *testing.T) {
	for _, fences := range []func([]float64) (stat.Fences, error){stat.IQRFences, stat.TukeyFences} {
		f, err := fences(spiky)
		require.NoError(t, err)
		o, err := stat.ClassifyOutliers(spiky, f)
		require.NoError(t, err)

		assert.Equal(t, []float64{100}, o.OuterFence)
		assert.Empty(t, o.InnerFence)
		assert.Equal(t, spiky[:9], o.Within)
		assert.Equal(t, [2]float64{1, 9}, o.Whiskers)
	}
}

func TestClassifyOutliersBuckets(t *testing.T) {
	sorted := []float64{-40, -12, 0, 1, 2, 3, 4, 5, 6, 15, 50}
	f := stat.Fences{
		Inner: [2]float64{-10, 10},
		Outer: [2]float64{-20, 20},
	}
	o, err := stat.ClassifyOutliers(sorted, f)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 2, 3, 4, 5, 6}, o.Within)
	assert.Equal(t, []float64{-12, 15}, o.InnerFence)
	assert.Equal(t, []float64{-40, 50}, o.OuterFence)
	assert.Equal(t, [2]float64{0, 6}, o.Whiskers)
}

func TestClassifyOutliersLimitIsInside(t *testing.T) {
	sorted := []float64{-10, 0, 10}
	f := stat.Fences{Inner: [2]float64{-10, 10}, Outer: [2]float64{-20, 20}}
	o, err := stat.ClassifyOutliers(sorted, f)
	require.NoError(t, err)
	assert.Equal(t, sorted, o.Within)
	assert.Empty(t, o.InnerFence)
	assert.Empty(t, o.OuterFence)
}

func TestClassifyOutliersIdempotent(t *testing.T) {
	samples := [][]float64{
		spiky,
		{-40, -12, 0, 1, 2, 3, 4, 5, 6, 15, 50},
		{1, 1, 1, 1, 30},
		{5},
	}
	for _, s := range samples {
		f, err := stat.IQRFences(s)
		require.NoError(t, err)
		first, err := stat.ClassifyOutliers(s, f)
		require.NoError(t, err)

		var union []float64
		union = append(union, first.Within...)
		union = append(union, first.InnerFence...)
		union = append(union, first.OuterFence...)
		sort.Float64s(union)
		require.Equal(t, s, union, "buckets must partition %v", s)

		second, err := stat.ClassifyOutliers(union, f)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestClassifyOutliersBadFences(t *testing.T) {
	f := stat.Fences{Inner: [2]float64{-1, 1}, Outer: [2]float64{0, 2}}
	_, err := stat.ClassifyOutliers([]float64{1, 2}, f)
	assert.ErrorIs(t, err, stat.ErrInvalidParameter)
}

func TestHistogramBins(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	h, err := stat.HistogramBins(values, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5, 7.5, 10}, h.Ticks)
	assert.Equal(t, []int{3, 2, 3, 3}, h.Counts)
	assert.Equal(t, 2.5, h.Width())
}

func TestHistogramCountsSum(t *testing.T) {
	values := []float64{0.1, 0.7, -3, 2.2, 2.2, 9.9, 4, 4.0001, 3.3333, 7}
	for n := 1; n <= 13; n++ {
		h, err := stat.HistogramBins(values, n)
		require.NoError(t, err)
		require.Len(t, h.Counts, n)
		require.Len(t, h.Ticks, n+1)
		sum := 0
		for _, c := range h.Counts {
			sum += c
		}
		assert.Equal(t, len(values), sum, "%d bins", n)
		assert.Equal(t, -3.0, h.Ticks[0])
		assert.Equal(t, 9.9, h.Ticks[n])
	}
}

func TestHistogramConstantSample(t *testing.T) {
	h, err := stat.HistogramBins([]float64{3, 3, 3}, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4}, h.Ticks)
	assert.Equal(t, []int{0, 3}, h.Counts)
}

func TestHistogramExtremeRange(t *testing.T) {
	_, err := stat.HistogramBins([]float64{-1e308, 0, 1e308}, 4)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)

	_, err = stat.HistogramBins([]float64{math.MaxFloat64}, 1)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)

	h, err := stat.HistogramBins([]float64{-4e307, 0, 4e307}, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 1}, h.Counts)
	assert.Equal(t, 4e307, h.Ticks[4])

	// ±1 vanishes next to 1e20, the range still gets a width.
	h, err = stat.HistogramBins([]float64{1e20, 1e20}, 3)
	require.NoError(t, err)
	assert.Less(t, h.Ticks[0], 1e20)
	assert.Greater(t, h.Ticks[3], 1e20)
	assert.Equal(t, 2, h.Counts[0]+h.Counts[1]+h.Counts[2])
}

func TestHistogramErrors(t *testing.T) {
	_, err := stat.HistogramBins(nil, 3)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)
	_, err = stat.HistogramBins([]float64{1}, 0)
	assert.ErrorIs(t, err, stat.ErrInvalidParameter)
	_, err = stat.HistogramBins([]float64{1}, -2)
	assert.ErrorIs(t, err, stat.ErrInvalidParameter)
}

func TestAggregate(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7}
	means, size, err := stat.Aggregate(values, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, size)
	assert.Equal(t, []float64{2, 5, 7}, means)

	for g := 1; g <= 8; g++ {
		means, size, err := stat.Aggregate(values, g, 0)
		require.NoError(t, err)
		assert.Equal(t, g, size)
		assert.Len(t, means, (len(values)+g-1)/g, "group size %d", g)
	}
}

func TestAggregateCollapses(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	means, size, err := stat.Aggregate(values, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.Equal(t, values, means)
}

func TestAggregateHugeGroups(t *testing.T) {
	values := []float64{1, 2, 3}
	means, size, err := stat.Aggregate(values, math.MaxInt, 0)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, size)
	assert.Equal(t, []float64{2}, means)

	means, size, err = stat.Aggregate(values, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.Equal(t, values, means)

	means, size, err = stat.Aggregate(values, 2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.Equal(t, values, means)
}

func TestAggregateErrors(t *testing.T) {
	_, _, err := stat.Aggregate(nil, 2, 1)
	assert.ErrorIs(t, err, stat.ErrInvalidInput)
	_, _, err = stat.Aggregate([]float64{1}, 0, 1)
	assert.ErrorIs(t, err, stat.ErrInvalidParameter)
	_, _, err = stat.Aggregate([]float64{1}, 1, -1)
	assert.ErrorIs(t, err, stat.ErrInvalidParameter)
}
