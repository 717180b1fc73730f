package stat

import "fmt"

// Fence multipliers of the interquartile range.
const (
	InnerFenceFactor = 1.5
	OuterFenceFactor = 3.0
)

// Fences are the thresholds used to classify outliers of a sample.
// Inner and Outer hold the [low, high] limits.
type Fences struct {
	Median   float64
	Q25, Q75 float64
	IQR      float64
	Inner    [2]float64
	Outer    [2]float64
}

// IQRFences computes fences centered on the median of the sorted sample:
// the inner fence is median ± 1.5·IQR, the outer one median ± 3·IQR.
func IQRFences(sorted []float64) (Fences, error) {
	if err := checkSorted("IQRFences", sorted); err != nil {
		return Fences{}, err
	}
	f := quartiles(sorted)
	f.Inner = [2]float64{f.Median - InnerFenceFactor*f.IQR, f.Median + InnerFenceFactor*f.IQR}
	f.Outer = [2]float64{f.Median - OuterFenceFactor*f.IQR, f.Median + OuterFenceFactor*f.IQR}
	return f, nil
}

// TukeyFences computes the classical fences anchored at the quartiles:
// [Q25 - 1.5·IQR, Q75 + 1.5·IQR] and [Q25 - 3·IQR, Q75 + 3·IQR].
func TukeyFences(sorted []float64) (Fences, error) {
	if err := checkSorted("TukeyFences", sorted); err != nil {
		return Fences{}, err
	}
	f := quartiles(sorted)
	f.Inner = [2]float64{f.Q25 - InnerFenceFactor*f.IQR, f.Q75 + InnerFenceFactor*f.IQR}
	f.Outer = [2]float64{f.Q25 - OuterFenceFactor*f.IQR, f.Q75 + OuterFenceFactor*f.IQR}
	return f, nil
}

func quartiles(sorted []float64) Fences {
	f := Fences{
		Median: median(sorted),
		Q25:    quantile(sorted, 0.25),
		Q75:    quantile(sorted, 0.75),
	}
	f.IQR = f.Q75 - f.Q25
	return f
}

// Outliers partitions a sorted sample by a set of Fences.
type Outliers struct {
	// Within are the values inside the inner fence, ascending.
	Within []float64

	// InnerFence are the values between inner and outer fence,
	// OuterFence those beyond the outer fence. Both list the lower
	// side first (descending, in scan order) followed by the upper side
	// (ascending).
	InnerFence []float64
	OuterFence []float64

	// Whiskers are the smallest and largest value inside the inner fence.
	// A side without such a value reports the value at the median index.
	Whiskers [2]float64
}

// ClassifyOutliers scans the sorted sample outward from index n/2, once
// downward against the lower limits of f and once upward against the
// upper limits. Each value is visited by exactly one scan; a value equal
// to a limit counts as inside.
func ClassifyOutliers(sorted []float64, f Fences) (Outliers, error) {
	if err := checkSorted("ClassifyOutliers", sorted); err != nil {
		return Outliers{}, err
	}
	if f.Inner[0] > f.Inner[1] || f.Outer[0] > f.Inner[0] || f.Outer[1] < f.Inner[1] {
		return Outliers{}, fmt.Errorf("ClassifyOutliers: fences %v / %v not nested: %w",
			f.Inner, f.Outer, ErrInvalidParameter)
	}

	n := len(sorted)
	mid := n / 2
	var o Outliers

	// Below (and at) the median index.
	o.Whiskers[0] = sorted[mid]
	var low []float64
	for i := mid; i >= 0; i-- {
		v := sorted[i]
		switch {
		case v >= f.Inner[0]:
			low = append(low, v)
			o.Whiskers[0] = v
		case v >= f.Outer[0]:
			o.InnerFence = append(o.InnerFence, v)
		default:
			o.OuterFence = append(o.OuterFence, v)
		}
	}

	// Above the median index. The high whisker falls back to the value
	// at the median index if everything above it is an outlier.
	o.Whiskers[1] = sorted[mid]
	var high []float64
	var innerHigh, outerHigh []float64
	for i := mid + 1; i < n; i++ {
		v := sorted[i]
		switch {
		case v <= f.Inner[1]:
			high = append(high, v)
			o.Whiskers[1] = v
		case v <= f.Outer[1]:
			innerHigh = append(innerHigh, v)
		default:
			outerHigh = append(outerHigh, v)
		}
	}
	o.InnerFence = append(o.InnerFence, innerHigh...)
	o.OuterFence = append(o.OuterFence, outerHigh...)

	o.Within = make([]float64, 0, len(low)+len(high))
	for i := len(low) - 1; i >= 0; i-- {
		o.Within = append(o.Within, low[i])
	}
	o.Within = append(o.Within, high...)

	return o, nil
}
