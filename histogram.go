package colorextract

import (
	"cmp"
	"math"
	"slices"
)

// Histogram counts accepted pixels per bucket key.
//
// The sum of all counts always equals Total: merging moves counts between
// buckets and never creates or drops any.
type Histogram struct {
	samples map[string]ColorSample
	total   int
}

func NewHistogram() *Histogram {
	return &Histogram{samples: make(map[string]ColorSample)}
}

// Accumulate counts one accepted pixel for the bucket of s, which must already
// be quantized.
func (h *Histogram) Accumulate(s ColorSample) {
	key := s.Key()
	if cur, ok := h.samples[key]; ok {
		cur.Count++
		h.samples[key] = cur
	} else {
		s.Count = 1
		s.Percentage = 0
		s.key = key
		h.samples[key] = s
	}
	h.total++
}

// Merge folds another histogram into h by summing counts of shared keys.
// other is left as it was.
func (h *Histogram) Merge(other *Histogram) {
	if other == nil {
		return
	}
	for key, s := range other.samples {
		if cur, ok := h.samples[key]; ok {
			cur.Count += s.Count
			h.samples[key] = cur
		} else {
			h.samples[key] = s
		}
	}
	h.total += other.total
}

// Reset empties the histogram for another run.
func (h *Histogram) Reset() {
	clear(h.samples)
	h.total = 0
}

// Len is the number of distinct buckets.
func (h *Histogram) Len() int {
	return len(h.samples)
}

// Total is the number of accepted pixels.
func (h *Histogram) Total() int {
	return h.total
}

// Sum adds the counts of every bucket.
func (h *Histogram) Sum() int {
	sum := 0
	for _, s := range h.samples {
		sum += s.Count
	}
	return sum
}

func (h *Histogram) Get(key string) (ColorSample, bool) {
	s, ok := h.samples[key]
	return s, ok
}

// absorb moves the count of src into dst and deletes src.
func (h *Histogram) absorb(dst, src string) {
	d, ok := h.samples[dst]
	if !ok {
		return
	}
	s, ok := h.samples[src]
	if !ok {
		return
	}
	d.Count += s.Count
	h.samples[dst] = d
	delete(h.samples, src)
}

// Sorted returns copies of all samples by descending count. Equal counts are
// ordered by key so the result never depends on map iteration.
func (h *Histogram) Sorted() []ColorSample {
	out := make([]ColorSample, 0, len(h.samples))
	for _, s := range h.samples {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b ColorSample) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.key, b.key)
	})
	return out
}

// ComputePercentages stores count/Total rounded to two decimals on every sample
// and returns the same values by key. With no accepted pixels every share is 0.
func (h *Histogram) ComputePercentages() map[string]float64 {
	summary := make(map[string]float64, len(h.samples))
	for key, s := range h.samples {
		s.Percentage = 0
		if h.total > 0 {
			s.Percentage = roundTo(float64(s.Count)/float64(h.total), 2)
		}
		h.samples[key] = s
		summary[key] = s.Percentage
	}
	return summary
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
