package colorextract

import "math"

// Mid-dark gray whose full tint range sizes the protected prefix. It is never
// inserted into a histogram.
const referenceGray = "333333"

// Reducer folds minority buckets into dominant ones that list them as a
// variation.
type Reducer struct {
	gen         VariationGenerator
	ignoreGrays bool
	observer    Observer
}

func NewReducer(gen VariationGenerator, ignoreGrays bool) *Reducer {
	return &Reducer{gen: gen, ignoreGrays: ignoreGrays}
}

// WithObserver reports every merge decision to o.
func (r *Reducer) WithObserver(o Observer) *Reducer {
	r.observer = o
	return r
}

// ProtectedCount is how many of the largest buckets are never reduced
// themselves: a fifth of the histogram, but at least one more than the number
// of tints of the reference gray.
func (r *Reducer) ProtectedCount(size int) int {
	tints := r.gen.AllTints(ParseSample(referenceGray), false)
	return max(int(math.Round(float64(size)/5)), len(tints)+1)
}

// Reduce performs one sweep over h in descending-count order. Each bucket past
// the protected prefix absorbs every present variation with a strictly smaller
// count; absorbed buckets are deleted and not visited later. ReduceNone is a
// no-op.
func (r *Reducer) Reduce(h *Histogram, mode ReduceMode) {
	if mode == ReduceNone || h.Len() == 0 {
		return
	}

	protected := r.ProtectedCount(h.Len())
	order := h.Sorted()
	visited := 0
	for _, entry := range order {
		current, ok := h.Get(entry.Key())
		if !ok {
			continue
		}
		visited++
		if visited <= protected {
			continue
		}

		for _, key := range r.candidates(h, current, mode) {
			dst, _ := h.Get(current.Key())
			src, ok := h.Get(key)
			if !ok {
				continue
			}
			merged := dst.Count > src.Count
			if r.observer != nil {
				r.observer.MergeConsidered(dst, src, merged)
			}
			if merged {
				h.absorb(dst.Key(), key)
			}
		}
	}
}

// candidates keeps the variations of current that are in h, in generator
// order, excluding current itself.
func (r *Reducer) candidates(h *Histogram, current ColorSample, mode ReduceMode) []string {
	variations := r.gen.ForMode(mode, current, r.ignoreGrays)
	out := variations[:0]
	for _, key := range variations {
		if key == current.Key() {
			continue
		}
		if _, ok := h.Get(key); ok {
			out = append(out, key)
		}
	}
	return out
}
