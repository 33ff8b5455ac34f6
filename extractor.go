package colorextract

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"sync"
)

var (
	// ErrUnreadableSource means the pixels could not be read at all.
	ErrUnreadableSource = errors.New("unreadable pixel source")
	// ErrUnrecognizedFormat means the source dimensions could not be
	// determined or are empty.
	ErrUnrecognizedFormat = errors.New("unrecognized image format")
)

// Extractor runs the quantize, accumulate, reduce and rank pipeline. It keeps
// the histogram of its last run; an Extractor is not safe for concurrent Run
// calls.
type Extractor struct {
	opts     Options
	quant    Quantizer
	gen      VariationGenerator
	observer Observer
	hist     *Histogram
	summary  map[string]float64
}

func NewExtractor(opts Options) *Extractor {
	normalized := opts.normalized()
	q := NewQuantizer(normalized.Fidelity)
	return &Extractor{
		opts:    normalized,
		quant:   q,
		gen:     NewVariationGenerator(q),
		hist:    NewHistogram(),
		summary: map[string]float64{},
	}
}

// SetObserver installs o for subsequent runs; nil disables tracing.
func (e *Extractor) SetObserver(o Observer) {
	e.observer = o
}

func (e *Extractor) Options() Options {
	return e.opts
}

func (e *Extractor) Quantizer() Quantizer {
	return e.quant
}

func (e *Extractor) Generator() VariationGenerator {
	return e.gen
}

// Colors returns the buckets of the last run by descending count.
func (e *Extractor) Colors() []ColorSample {
	return e.hist.Sorted()
}

// Summary returns the percentage per key of the last run.
func (e *Extractor) Summary() map[string]float64 {
	out := make(map[string]float64, len(e.summary))
	for k, v := range e.summary {
		out[k] = v
	}
	return out
}

// AnalyzeImage runs the pipeline over an already decoded image.
func (e *Extractor) AnalyzeImage(img image.Image) (Result, error) {
	if img == nil {
		return Result{}, fmt.Errorf("analyze image: %w", ErrUnreadableSource)
	}
	return e.Run(NewImageSource(img))
}

// Run resets the extractor and processes every pixel of src.
func (e *Extractor) Run(src PixelSource) (Result, error) {
	e.reset()
	if src == nil {
		return Result{}, fmt.Errorf("run: %w", ErrUnreadableSource)
	}
	size := src.Size()
	if size.X <= 0 || size.Y <= 0 {
		return Result{}, fmt.Errorf("run: %dx%d source: %w", size.X, size.Y, ErrUnrecognizedFormat)
	}

	// Step 1: quantize and count
	e.accumulate(src, size, e.opts.Workers)

	// Step 2: reduce over the descending-count order
	NewReducer(e.gen, e.opts.IgnoreGrays).
		WithObserver(e.observer).
		Reduce(e.hist, e.opts.ReduceMode)

	// Step 3: rank and compute shares
	e.summary = e.hist.ComputePercentages()
	return Result{
		Colors:      e.hist.Sorted(),
		Summary:     e.Summary(),
		TotalPixels: e.hist.Total(),
		Width:       size.X,
		Height:      size.Y,
	}, nil
}

func (e *Extractor) reset() {
	e.hist.Reset()
	e.summary = map[string]float64{}
}

// accumulate scans src in up to workers row bands and merges their counts.
func (e *Extractor) accumulate(src PixelSource, size image.Point, workers int) {
	workers = max(1, min(workers, size.Y))
	if workers == 1 {
		e.scanRows(src, e.hist, 0, size.Y, size.X)
		return
	}

	partials := make([]*Histogram, workers)
	var wg sync.WaitGroup
	for worker := 0; worker < workers; worker++ {
		startY, endY := splitRange(size.Y, workers, worker)
		wg.Add(1)
		go func(index, start, end int) {
			defer wg.Done()
			local := NewHistogram()
			e.scanRows(src, local, start, end, size.X)
			partials[index] = local
		}(worker, startY, endY)
	}
	wg.Wait()

	for _, local := range partials {
		e.hist.Merge(local)
	}
}

func (e *Extractor) scanRows(src PixelSource, h *Histogram, startY, endY, width int) {
	for y := startY; y < endY; y++ {
		for x := 0; x < width; x++ {
			p := src.At(x, y)
			s := e.quant.Quantize(NewSample(int(p.R), int(p.G), int(p.B)))
			accepted := !p.Transparent() && !e.isBackground(s)
			if e.observer != nil {
				e.observer.PixelClassified(x, y, s, accepted)
			}
			if accepted {
				h.Accumulate(s)
			}
		}
	}
}

func (e *Extractor) isBackground(s ColorSample) bool {
	return e.opts.BackgroundColor != "" && strings.EqualFold(s.Key(), e.opts.BackgroundColor)
}

func splitRange(total, parts, index int) (int, int) {
	start := total * index / parts
	end := total * (index + 1) / parts
	return start, end
}
