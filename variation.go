package colorextract

import "slices"

// VariationGenerator lists the bucket keys related to a color: tints share its
// channel ratios at other brightness levels, gradients differ from it by one
// step on one or two channels. Every method quantizes its input first.
//
// Black, white and (when ignoreGrays is set) grays are degenerate: the result is
// only the color's own key.
type VariationGenerator struct {
	q Quantizer
}

func NewVariationGenerator(q Quantizer) VariationGenerator {
	return VariationGenerator{q: q}
}

func (v VariationGenerator) Quantizer() Quantizer {
	return v.q
}

type variationBase struct {
	rgb    [3]float64
	hi, lo float64
	key    string
}

func (v VariationGenerator) base(s ColorSample) variationBase {
	rgb := v.q.grid(s)
	return variationBase{
		rgb: rgb,
		hi:  max(rgb[0], rgb[1], rgb[2]),
		lo:  min(rgb[0], rgb[1], rgb[2]),
		key: gridKey(rgb[0], rgb[1], rgb[2]),
	}
}

func (b variationBase) degenerate(ignoreGrays bool) bool {
	return b.lo == maxChannel || b.hi == 0 || (b.hi == b.lo && ignoreGrays)
}

// ceiling is the brightest channel that still has room to grow. With a
// saturated channel it is the highest unsaturated one plus a step, so a scan
// up to 255 is never empty.
func (v VariationGenerator) ceiling(b variationBase) float64 {
	if b.hi < maxChannel {
		return b.hi
	}
	second := 0.0
	for _, c := range b.rgb {
		if c < maxChannel && c > second {
			second = c
		}
	}
	return second + v.q.Step()
}

func (b variationBase) shifted(i float64) string {
	return gridKey(
		min(maxChannel, b.rgb[0]+i),
		min(maxChannel, b.rgb[1]+i),
		min(maxChannel, b.rgb[2]+i),
	)
}

// LighterTints walks from the color towards white in step increments, adding
// the same offset to every channel.
func (v VariationGenerator) LighterTints(s ColorSample, ignoreGrays bool) []string {
	b := v.base(s)
	if b.degenerate(ignoreGrays) {
		return []string{b.key}
	}

	var keys []string
	limit := maxChannel - v.ceiling(b)
	for i := 0.0; i <= limit+gridEpsilon; i += v.q.Step() {
		keys = append(keys, b.shifted(i))
	}
	if len(keys) == 0 {
		return []string{b.key}
	}
	return keys
}

// AllTints is Tints without a limit.
func (v VariationGenerator) AllTints(s ColorSample, ignoreGrays bool) []string {
	return v.Tints(s, ignoreGrays, 0)
}

// Tints walks both darker and lighter, at most limit steps each way. A limit
// of 0 covers the whole channel range.
func (v VariationGenerator) Tints(s ColorSample, ignoreGrays bool, limit int) []string {
	b := v.base(s)
	if b.degenerate(ignoreGrays) {
		return []string{b.key}
	}

	low, high := -float64(maxChannel), float64(maxChannel)
	if limit > 0 {
		low = -float64(limit) * v.q.Step()
		high = float64(limit) * v.q.Step()
	}
	start := max(-b.lo, low)
	top := min(maxChannel-v.ceiling(b), high)

	var keys []string
	for i := start; i <= top+gridEpsilon; i += v.q.Step() {
		keys = append(keys, b.shifted(i))
	}
	if len(keys) == 0 {
		return []string{b.key}
	}
	return keys
}

// Gradients returns the colors at most one channel-step away from s on a
// single channel, s itself included.
func (v VariationGenerator) Gradients(s ColorSample, ignoreGrays bool) []string {
	return v.gradients(s, ignoreGrays, 2)
}

// MoreGradients also allows two channels to move at once.
func (v VariationGenerator) MoreGradients(s ColorSample, ignoreGrays bool) []string {
	return v.gradients(s, ignoreGrays, 1)
}

// gradients enumerates {c-step, c, c+step} per channel and keeps a combination
// when at least keep channels are unchanged, all values stay in 0..255 and the
// result is not a gray.
func (v VariationGenerator) gradients(s ColorSample, ignoreGrays bool, keep int) []string {
	b := v.base(s)
	if b.degenerate(ignoreGrays) {
		return []string{b.key}
	}

	step := v.q.Step()
	var keys []string
	for ri := -1; ri <= 1; ri++ {
		for gi := -1; gi <= 1; gi++ {
			for bi := -1; bi <= 1; bi++ {
				if unchanged(ri, gi, bi) < keep {
					continue
				}
				r := b.rgb[0] + float64(ri)*step
				g := b.rgb[1] + float64(gi)*step
				bl := b.rgb[2] + float64(bi)*step
				hi, lo := max(r, g, bl), min(r, g, bl)
				if hi > maxChannel+gridEpsilon || lo < -gridEpsilon || hi-lo < gridEpsilon {
					continue
				}
				keys = append(keys, gridKey(r, g, bl))
			}
		}
	}
	return keys
}

func unchanged(offsets ...int) int {
	n := 0
	for _, o := range offsets {
		if o == 0 {
			n++
		}
	}
	return n
}

// GradientTints merges LighterTints and Gradients into one sorted, duplicate
// free list.
func (v VariationGenerator) GradientTints(s ColorSample, ignoreGrays bool) []string {
	keys := append(v.LighterTints(s, ignoreGrays), v.Gradients(s, ignoreGrays)...)
	slices.Sort(keys)
	return slices.Compact(keys)
}

// ForMode dispatches to the variation set a reduce mode merges with. ReduceNone
// yields the color's own key.
func (v VariationGenerator) ForMode(mode ReduceMode, s ColorSample, ignoreGrays bool) []string {
	switch mode {
	case ReduceTints:
		return v.LighterTints(s, ignoreGrays)
	case ReduceAllTints:
		return v.AllTints(s, ignoreGrays)
	case ReduceGradients:
		return v.Gradients(s, ignoreGrays)
	case ReduceMoreGradients:
		return v.MoreGradients(s, ignoreGrays)
	case ReduceGradientTints:
		return v.GradientTints(s, ignoreGrays)
	default:
		return []string{v.q.Quantize(s).Key()}
	}
}

func gridKey(r, g, b float64) string {
	return MakeKey(truncate(r), truncate(g), truncate(b))
}
