package utils

import (
	"image"
	"image/color"
	"testing"

	"github.com/setanarut/colorextract"
)

func TestHighlightMarksUnrelatedPixels(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 102, B: 102, A: 255})
	img.SetNRGBA(2, 0, color.NRGBA{B: 255, A: 255})

	gen := colorextract.NewVariationGenerator(colorextract.NewQuantizer(0))
	out := Highlight(gen, img, colorextract.ParseSample("ff0000"), colorextract.ReduceNone)

	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Fatalf("reference pixel changed: %v", got)
	}
	if got := out.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, G: 102, B: 102, A: 255}) {
		t.Fatalf("tint pixel changed: %v", got)
	}
	if got := out.NRGBAAt(2, 0); got != Removed {
		t.Fatalf("unrelated pixel should be removed, got %v", got)
	}
}

func TestHighlightGradients(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 51, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 102, B: 102, A: 255})

	gen := colorextract.NewVariationGenerator(colorextract.NewQuantizer(0))
	out := Highlight(gen, img, colorextract.ParseSample("ff0000"), colorextract.ReduceGradients)

	if got := out.NRGBAAt(0, 0); got == Removed {
		t.Fatal("single-channel gradient should be kept")
	}
	if got := out.NRGBAAt(1, 0); got != Removed {
		t.Fatalf("tint is not a gradient and should be removed, got %v", got)
	}
}
