package utils

import (
	"image"
	"image/color"

	"github.com/setanarut/colorextract"
)

// Removed marks pixels outside the highlighted variation set. Its alpha is 0 so
// viewers show them as transparent.
var Removed = color.NRGBA{R: 255, G: 0, B: 255, A: 0}

// Highlight renders img with every pixel whose bucket is not a variation of
// reference (for the given reduce mode) replaced by Removed. ReduceNone falls
// back to lighter tints. Grays are treated as degenerate, as during reduction.
func Highlight(gen colorextract.VariationGenerator, img image.Image, reference colorextract.ColorSample, mode colorextract.ReduceMode) *image.NRGBA {
	if mode == colorextract.ReduceNone {
		mode = colorextract.ReduceTints
	}
	match := make(map[string]struct{})
	for _, key := range gen.ForMode(mode, reference, true) {
		match[key] = struct{}{}
	}

	src := colorextract.NewImageSource(img)
	size := src.Size()
	q := gen.Quantizer()
	out := image.NewNRGBA(image.Rect(0, 0, size.X, size.Y))
	for y := 0; y < size.Y; y++ {
		for x := 0; x < size.X; x++ {
			p := src.At(x, y)
			s := q.Quantize(colorextract.NewSample(int(p.R), int(p.G), int(p.B)))
			if _, ok := match[s.Key()]; !ok {
				out.SetNRGBA(x, y, Removed)
				continue
			}
			out.SetNRGBA(x, y, color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
	return out
}
