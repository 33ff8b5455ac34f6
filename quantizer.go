package colorextract

import "math"

const (
	maxChannel = 255
	// Widest bucket, reached at fidelity 0.
	maxStepSpan = 50
	// Slack for float drift when a grid point is cut to an int.
	gridEpsilon = 1e-6
)

// Quantizer snaps channel values onto a uniform grid whose spacing (step) is
// derived from a fidelity in [0, 1]. Fidelity 1 keeps every channel value
// (step 1); fidelity 0 gives the coarsest grid (step 51).
type Quantizer struct {
	step float64
}

func NewQuantizer(fidelity float64) Quantizer {
	return Quantizer{step: (1-clampFidelity(fidelity))*maxStepSpan + 1}
}

func clampFidelity(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return max(0, min(f, 1))
}

// Step returns the grid spacing shared by all three channels. The zero
// Quantizer behaves like fidelity 1.
func (q Quantizer) Step() float64 {
	return max(q.step, 1)
}

// snap keeps the fractional grid point; keys truncate it.
func (q Quantizer) snap(v float64) float64 {
	return min(math.Round(v/q.Step())*q.Step(), maxChannel)
}

// RoundChannel maps v to its bucket value: the nearest multiple of the step,
// capped at 255.
func (q Quantizer) RoundChannel(v int) int {
	return truncate(q.snap(float64(v)))
}

// Quantize returns s with every channel bucketed and the key re-derived.
// Count and Percentage are carried over untouched.
//
// The sample remembers its grid point, so quantizing it again (or deriving
// variations from it) starts from the same point even when the step is
// fractional and R, G, B lost the fraction.
func (q Quantizer) Quantize(s ColorSample) ColorSample {
	g := q.grid(s)
	s.R, s.G, s.B = truncate(g[0]), truncate(g[1]), truncate(g[2])
	s.key = MakeKey(s.R, s.G, s.B)
	s.grid = g
	s.gridded = true
	return s
}

func (q Quantizer) grid(s ColorSample) [3]float64 {
	src := [3]float64{float64(s.R), float64(s.G), float64(s.B)}
	if s.gridded {
		src = s.grid
	}
	return [3]float64{q.snap(src[0]), q.snap(src[1]), q.snap(src[2])}
}

func truncate(v float64) int {
	return int(v + gridEpsilon)
}
