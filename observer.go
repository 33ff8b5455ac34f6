package colorextract

// Observer receives trace events from an extraction run. Implementations are
// optional; with Options.Workers > 1 PixelClassified is called from several
// goroutines at once.
type Observer interface {
	// PixelClassified is called for every scanned pixel with its quantized
	// sample. accepted is false for transparent and background pixels.
	PixelClassified(x, y int, s ColorSample, accepted bool)
	// MergeConsidered is called for every candidate a bucket is compared
	// with during reduction. src is absorbed into dst when merged is true.
	MergeConsidered(dst, src ColorSample, merged bool)
}
