package colorextract

import (
	"testing"
)

// Seven dominant buckets unrelated to the reds used below; at step 51 they fill
// the protected prefix exactly.
var fillerCounts = map[string]int{
	"000033": 100,
	"000066": 100,
	"000099": 100,
	"0000cc": 100,
	"0000ff": 100,
	"003300": 100,
	"006600": 100,
}

func withFillers(extra map[string]int) map[string]int {
	out := make(map[string]int, len(fillerCounts)+len(extra))
	for k, v := range fillerCounts {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

type mergeRecorder struct {
	merges []string
	skips  []string
}

func (m *mergeRecorder) PixelClassified(int, int, ColorSample, bool) {}

func (m *mergeRecorder) MergeConsidered(dst, src ColorSample, merged bool) {
	entry := dst.Key() + "<" + src.Key()
	if merged {
		m.merges = append(m.merges, entry)
	} else {
		m.skips = append(m.skips, entry)
	}
}

func TestProtectedCount(t *testing.T) {
	t.Parallel()

	coarse := NewReducer(coarseGenerator(), true)
	if got := coarse.ProtectedCount(10); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := coarse.ProtectedCount(50); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}

	fine := NewReducer(NewVariationGenerator(NewQuantizer(1)), true)
	if got := fine.ProtectedCount(10); got != 257 {
		t.Fatalf("expected 257, got %d", got)
	}
}

func TestReduceAbsorbsLighterTints(t *testing.T) {
	t.Parallel()

	h := histogramOf(withFillers(map[string]int{"330000": 50, "663333": 20, "cc9999": 5}))
	before := h.Sum()
	rec := &mergeRecorder{}

	NewReducer(coarseGenerator(), true).WithObserver(rec).Reduce(h, ReduceTints)

	if h.Sum() != before || h.Total() != before {
		t.Fatalf("count not conserved: %d -> %d", before, h.Sum())
	}
	if h.Len() != 8 {
		t.Fatalf("expected 8 buckets, got %d", h.Len())
	}
	s, ok := h.Get("330000")
	if !ok || s.Count != 75 {
		t.Fatalf("expected 330000 with 75, got %+v", s)
	}
	for _, key := range []string{"663333", "cc9999"} {
		if _, ok := h.Get(key); ok {
			t.Fatalf("%s should have been absorbed", key)
		}
	}
	if len(rec.merges) != 2 || rec.merges[0] != "330000<663333" || rec.merges[1] != "330000<cc9999" {
		t.Fatalf("unexpected merge trace %v", rec.merges)
	}
}

func TestReduceRequiresStrictlyLargerCount(t *testing.T) {
	t.Parallel()

	h := histogramOf(withFillers(map[string]int{"330000": 20, "663333": 20}))
	rec := &mergeRecorder{}

	NewReducer(coarseGenerator(), true).WithObserver(rec).Reduce(h, ReduceTints)

	if h.Len() != 9 {
		t.Fatalf("expected nothing merged, got %d buckets", h.Len())
	}
	if len(rec.merges) != 0 || len(rec.skips) != 1 || rec.skips[0] != "330000<663333" {
		t.Fatalf("unexpected trace merges=%v skips=%v", rec.merges, rec.skips)
	}
}

func TestReduceLeavesProtectedPrefix(t *testing.T) {
	t.Parallel()

	h := histogramOf(map[string]int{"330000": 50, "663333": 20, "cc9999": 5})
	NewReducer(coarseGenerator(), true).Reduce(h, ReduceTints)
	if h.Len() != 3 {
		t.Fatalf("small histogram must stay untouched, got %d buckets", h.Len())
	}
}

func TestReduceNoneIsNoop(t *testing.T) {
	t.Parallel()

	h := histogramOf(withFillers(map[string]int{"330000": 50, "663333": 20}))
	NewReducer(coarseGenerator(), true).Reduce(h, ReduceNone)
	if h.Len() != 9 {
		t.Fatalf("expected 9 buckets, got %d", h.Len())
	}
}

func TestReduceAbsorbedBucketsAreNotVisited(t *testing.T) {
	t.Parallel()

	// 663333 would absorb 996666 if it were still visited after being merged
	// into 330000.
	h := histogramOf(withFillers(map[string]int{"330000": 60, "663333": 30, "996666": 10}))
	rec := &mergeRecorder{}
	NewReducer(coarseGenerator(), true).WithObserver(rec).Reduce(h, ReduceTints)

	if s, _ := h.Get("330000"); s.Count != 100 {
		t.Fatalf("expected 330000 to hold 100, got %d", s.Count)
	}
	for _, entry := range append(rec.merges, rec.skips...) {
		if entry[:6] == "663333" || entry[:6] == "996666" {
			t.Fatalf("absorbed bucket was visited: %s", entry)
		}
	}
}

func TestReduceGradients(t *testing.T) {
	t.Parallel()

	h := histogramOf(withFillers(map[string]int{"336699": 40, "336666": 10, "666699": 3, "003399": 2}))
	before := h.Sum()
	NewReducer(coarseGenerator(), true).Reduce(h, ReduceGradients)

	if h.Sum() != before {
		t.Fatalf("count not conserved: %d -> %d", before, h.Sum())
	}
	if s, _ := h.Get("336699"); s.Count != 53 {
		t.Fatalf("expected 53, got %d", s.Count)
	}
	// two channels away, only reachable with more-gradients
	if _, ok := h.Get("003399"); !ok {
		t.Fatalf("003399 should survive single-channel gradients")
	}
}
