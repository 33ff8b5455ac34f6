package colorextract

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Result is the ranked color summary of one run.
type Result struct {
	// Buckets by descending count.
	Colors []ColorSample
	// Percentage by key, rounded to two decimals.
	Summary map[string]float64
	// Pixels that passed the transparency and background filters.
	TotalPixels int
	// Dimensions of the scanned grid.
	Width, Height int
}

// Top returns at most n of the most frequent colors.
func (r Result) Top(n int) []ColorSample {
	if n <= 0 || n >= len(r.Colors) {
		return r.Colors
	}
	return r.Colors[:n]
}

// PercentageSum adds every rounded share. It stays within 0.02 per bucket of 1
// when any pixel was accepted.
func (r Result) PercentageSum() float64 {
	shares := make([]float64, len(r.Colors))
	for i, c := range r.Colors {
		shares[i] = c.Percentage
	}
	return floats.Sum(shares)
}

func (r Result) counts() []float64 {
	counts := make([]float64, len(r.Colors))
	for i, c := range r.Colors {
		counts[i] = float64(c.Count)
	}
	return counts
}

// Coverage is the exact fraction of accepted pixels held by the n most frequent
// colors. n <= 0 covers every color.
func (r Result) Coverage(n int) float64 {
	if r.TotalPixels == 0 {
		return 0
	}
	top := make([]float64, len(r.Colors))
	for i, end := 0, len(r.Top(n)); i < end; i++ {
		top[i] = 1
	}
	return floats.Dot(top, r.counts()) / float64(r.TotalPixels)
}

// AverageColor is the count-weighted mean of all buckets, rounded to the
// nearest channel value. The zero sample is returned for an empty result.
func (r Result) AverageColor() ColorSample {
	if len(r.Colors) == 0 {
		return ColorSample{}
	}
	rs := make([]float64, len(r.Colors))
	gs := make([]float64, len(r.Colors))
	bs := make([]float64, len(r.Colors))
	for i, c := range r.Colors {
		rs[i], gs[i], bs[i] = float64(c.R), float64(c.G), float64(c.B)
	}
	weights := r.weights()
	avg := NewSample(
		int(stat.Mean(rs, weights)+0.5),
		int(stat.Mean(gs, weights)+0.5),
		int(stat.Mean(bs, weights)+0.5),
	)
	avg.Count = r.TotalPixels
	return avg
}

// Lightness returns the count-weighted mean and standard deviation of the HSL
// lightness of every bucket. A single color has no spread.
func (r Result) Lightness() (mean, std float64) {
	if len(r.Colors) == 0 {
		return 0, 0
	}
	ls := make([]float64, len(r.Colors))
	for i, c := range r.Colors {
		_, _, ls[i] = c.HSL()
	}
	if len(ls) == 1 {
		return ls[0], 0
	}
	return stat.MeanStdDev(ls, r.weights())
}

// weights are the bucket counts, or nil (uniform) when no pixel was counted.
func (r Result) weights() []float64 {
	w := r.counts()
	if floats.Sum(w) == 0 {
		return nil
	}
	return w
}
