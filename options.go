package colorextract

import (
	"fmt"
	"runtime"
	"strings"
)

// ReduceMode selects the variation set used to fold minority buckets into
// dominant ones.
type ReduceMode int

const (
	ReduceNone ReduceMode = iota
	ReduceTints
	ReduceAllTints
	ReduceGradients
	ReduceMoreGradients
	ReduceGradientTints
)

var reduceModeNames = map[ReduceMode]string{
	ReduceNone:          "none",
	ReduceTints:         "tints",
	ReduceAllTints:      "all-tints",
	ReduceGradients:     "gradients",
	ReduceMoreGradients: "more-gradients",
	ReduceGradientTints: "gradient-tints",
}

func (m ReduceMode) String() string {
	if name, ok := reduceModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ReduceMode(%d)", int(m))
}

// ValidReduceModes lists every mode in declaration order.
func ValidReduceModes() []ReduceMode {
	return []ReduceMode{
		ReduceNone,
		ReduceTints,
		ReduceAllTints,
		ReduceGradients,
		ReduceMoreGradients,
		ReduceGradientTints,
	}
}

// ParseReduceMode accepts the String form, case-insensitively, with '_' and '-'
// treated alike.
func ParseReduceMode(name string) (ReduceMode, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, m := range ValidReduceModes() {
		if reduceModeNames[m] == norm {
			return m, nil
		}
	}
	return ReduceNone, fmt.Errorf("unknown reduce mode %q (valid modes: %v)", name, ValidReduceModes())
}

const (
	defaultPreviewSize = 200
	maxPreviewSize     = 4096
	maxWorkerCap       = 16
)

type Options struct {
	// Quantization fidelity in [0, 1].
	// 1 keeps every channel value, 0 uses buckets 51 values wide.
	Fidelity float64
	// Pixels whose bucket key equals this 6-digit hex color (case-insensitive,
	// optional '#') are not counted. Empty disables the filter.
	BackgroundColor string
	// Merge strategy applied after accumulation.
	ReduceMode ReduceMode
	// Treat grays as degenerate when looking for merge candidates.
	IgnoreGrays bool
	// Preview bounds used by file-level helpers that downscale before analysis.
	PreviewWidth  int
	PreviewHeight int
	// Row bands accumulated concurrently. 1 keeps everything on the caller's
	// goroutine.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		Fidelity:        0,
		BackgroundColor: "FFFFFF",
		ReduceMode:      ReduceTints,
		IgnoreGrays:     true,
		PreviewWidth:    defaultPreviewSize,
		PreviewHeight:   defaultPreviewSize,
		Workers:         1,
	}
}

func (o Options) normalized() Options {
	n := o
	n.Fidelity = clampFidelity(n.Fidelity)
	n.BackgroundColor = strings.TrimPrefix(strings.TrimSpace(n.BackgroundColor), "#")

	if n.PreviewWidth <= 0 {
		n.PreviewWidth = defaultPreviewSize
	}
	if n.PreviewHeight <= 0 {
		n.PreviewHeight = defaultPreviewSize
	}
	n.PreviewWidth = min(n.PreviewWidth, maxPreviewSize)
	n.PreviewHeight = min(n.PreviewHeight, maxPreviewSize)

	if n.Workers <= 0 {
		n.Workers = 1
	}
	n.Workers = min(n.Workers, max(1, min(runtime.GOMAXPROCS(0), maxWorkerCap)))
	return n
}
