// Package utils holds the file and image plumbing around the color extractor:
// decoding, preview downscaling, debug renderings and palette swatches.
package utils

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/setanarut/colorextract"
	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes a GIF, JPEG, PNG, BMP, TIFF or WebP file. Failures wrap
// colorextract.ErrUnreadableSource or colorextract.ErrUnrecognizedFormat.
func ReadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w: %v", path, colorextract.ErrUnreadableSource, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w: %v", path, colorextract.ErrUnrecognizedFormat, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image: %w", path, colorextract.ErrUnrecognizedFormat)
	}
	return img, nil
}

// PreviewSize fits width x height into maxWidth x maxHeight keeping the aspect
// ratio. Images are only ever shrunk; each side stays at least 1 pixel.
func PreviewSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return width, height
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}
	// scale = min(maxWidth/width, maxHeight/height), kept in integers so the
	// bounding side lands exactly on its limit.
	if maxWidth*height <= maxHeight*width {
		return maxWidth, max(1, height*maxWidth/width)
	}
	return max(1, width*maxHeight/height), maxHeight
}

// Preview returns img downscaled to fit maxWidth x maxHeight, or img itself
// when it already fits.
func Preview(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := PreviewSize(b.Dx(), b.Dy(), maxWidth, maxHeight)
	if w == b.Dx() && h == b.Dy() {
		return img
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func SaveImage(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
