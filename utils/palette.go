package utils

import (
	"fmt"
	"image"
	"slices"

	"github.com/setanarut/colorextract"
)

// SortPaletteByBrightness orders colors from darkest to brightest by relative
// luminance.
func SortPaletteByBrightness(palette []colorextract.ColorSample) {
	slices.SortFunc(palette, func(a, b colorextract.ColorSample) int {
		ri, gi, bi := a.Colorful().LinearRgb()
		rj, gj, bj := b.Colorful().LinearRgb()
		yi := 0.2126*ri + 0.7152*gi + 0.0722*bi
		yj := 0.2126*rj + 0.7152*gj + 0.0722*bj
		if yi < yj {
			return -1
		}
		if yi > yj {
			return 1
		}
		return 0
	})
}

// PaletteImage draws one tileSize square per color, left to right.
func PaletteImage(palette []colorextract.ColorSample, tileSize int) (*image.RGBA, error) {
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	w := tileSize * len(palette)
	h := tileSize
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, c := range palette {
		fill := c.RGBA()
		x0 := i * tileSize
		x1 := x0 + tileSize
		for y := 0; y < h; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img, nil
}

// ShareBar draws a width x height strip split between the colors in proportion
// to their counts.
func ShareBar(palette []colorextract.ColorSample, width, height int) (*image.RGBA, error) {
	total := 0
	for _, c := range palette {
		total += c.Count
	}
	if total == 0 || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("nothing to draw")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	x0, acc := 0, 0
	for _, c := range palette {
		acc += c.Count
		x1 := acc * width / total
		fill := c.RGBA()
		for y := 0; y < height; y++ {
			for x := x0; x < x1; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
		x0 = x1
	}
	return img, nil
}

func SavePalette(palette []colorextract.ColorSample, tileSize int, filename string) error {
	img, err := PaletteImage(palette, tileSize)
	if err != nil {
		return err
	}
	return SaveImage(img, filename)
}
