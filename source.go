package colorextract

import (
	"fmt"
	"image"
	"image/draw"
)

// Pixel is one straight-alpha sample. A is opacity: 255 is fully opaque.
type Pixel struct {
	R, G, B, A uint8
}

// PixelSource is a finite width x height grid read in row-major order.
// At must be safe for concurrent reads.
type PixelSource interface {
	Size() image.Point
	At(x, y int) Pixel
}

// maxTransparency is the largest 7-bit transparency still counted. Anything
// more than about half transparent is ignored.
const maxTransparency = 64

func (p Pixel) transparency() int {
	return int(255-p.A) >> 1
}

// Transparent reports whether the pixel is too transparent to be counted.
func (p Pixel) Transparent() bool {
	return p.transparency() > maxTransparency
}

// PixelGrid is a PixelSource backed by a row-major slice.
type PixelGrid struct {
	width, height int
	pix           []Pixel
}

// NewPixelGrid wraps pix, which must hold exactly width*height pixels.
func NewPixelGrid(width, height int, pix []Pixel) (*PixelGrid, error) {
	if width < 0 || height < 0 || len(pix) != width*height {
		return nil, fmt.Errorf("pixel grid %dx%d needs %d pixels, got %d", width, height, max(0, width*height), len(pix))
	}
	return &PixelGrid{width: width, height: height, pix: pix}, nil
}

func (g *PixelGrid) Size() image.Point {
	return image.Pt(g.width, g.height)
}

func (g *PixelGrid) At(x, y int) Pixel {
	return g.pix[y*g.width+x]
}

// ImageSource adapts an image.Image. The image is copied once into NRGBA so
// reads are cheap and the alpha is not premultiplied.
type ImageSource struct {
	img *image.NRGBA
}

func NewImageSource(img image.Image) *ImageSource {
	return &ImageSource{img: toNRGBA(img)}
}

func (s *ImageSource) Size() image.Point {
	return s.img.Bounds().Size()
}

func (s *ImageSource) At(x, y int) Pixel {
	offset := y*s.img.Stride + x*4
	p := s.img.Pix[offset : offset+4 : offset+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func toNRGBA(img image.Image) *image.NRGBA {
	if img == nil {
		return image.NewNRGBA(image.Rectangle{})
	}
	bounds := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok && bounds.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}
