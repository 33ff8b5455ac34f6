package colorextract

import (
	"errors"
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorKey is returned by ParseSampleStrict for anything that is not
// six hex digits with an optional leading '#'.
var ErrInvalidColorKey = errors.New("invalid color key")

var colorKeyPattern = regexp.MustCompile(`^#?[A-Fa-f0-9]{6}$`)

// ColorSample is one color bucket: its channels, canonical key, how many
// accepted pixels fell into it and the share of the total that represents.
//
// Samples are plain values. The histogram owns the copies it stores; callers
// receive copies and mutating them has no effect on the histogram.
type ColorSample struct {
	R, G, B    int
	Count      int
	Percentage float64
	key        string

	// Set by Quantizer.Quantize: the untruncated grid point behind R, G, B.
	grid    [3]float64
	gridded bool
}

// NewSample builds a sample with zero count. Channels are clamped into 0..255.
func NewSample(r, g, b int) ColorSample {
	r = clampChannel(r)
	g = clampChannel(g)
	b = clampChannel(b)
	return ColorSample{R: r, G: g, B: b, key: MakeKey(r, g, b)}
}

// ParseSample builds a sample from a 6-digit hex key such as "ff8800" or
// "#FF8800". A malformed key yields black with zero count instead of an error.
func ParseSample(key string) ColorSample {
	s, err := ParseSampleStrict(key)
	if err != nil {
		return NewSample(0, 0, 0)
	}
	return s
}

// ParseSampleStrict is ParseSample for callers that want malformed keys
// reported.
func ParseSampleStrict(key string) (ColorSample, error) {
	if !colorKeyPattern.MatchString(key) {
		return ColorSample{}, fmt.Errorf("%w: %q", ErrInvalidColorKey, key)
	}
	c, err := colorful.Hex("#" + strings.ToLower(strings.TrimPrefix(key, "#")))
	if err != nil {
		return ColorSample{}, fmt.Errorf("%w: %q: %v", ErrInvalidColorKey, key, err)
	}
	r, g, b := c.RGB255()
	return NewSample(int(r), int(g), int(b)), nil
}

// MakeKey formats three channels as lower-case, zero-padded hex.
func MakeKey(r, g, b int) string {
	return fmt.Sprintf("%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Key returns the canonical 6-digit key. The zero ColorSample reports "000000".
func (s ColorSample) Key() string {
	if s.key == "" {
		return MakeKey(s.R, s.G, s.B)
	}
	return s.key
}

func (s ColorSample) String() string {
	return fmt.Sprintf("#%s (%d, %.2f)", s.Key(), s.Count, s.Percentage)
}

// Hex is the display form of the bucket, "#" followed by the key in
// upper case.
func (s ColorSample) Hex() string {
	return dominantcolor.Hex(s.RGBA())
}

// RGBA returns the opaque color of the bucket.
func (s ColorSample) RGBA() color.RGBA {
	return color.RGBA{R: uint8(s.R), G: uint8(s.G), B: uint8(s.B), A: 255}
}

// Colorful returns the sample as a go-colorful color in [0, 1] sRGB.
func (s ColorSample) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(s.R) / 255,
		G: float64(s.G) / 255,
		B: float64(s.B) / 255,
	}
}

// HSL returns hue in degrees [0, 360), saturation and lightness in [0, 1].
func (s ColorSample) HSL() (h, sat, l float64) {
	return s.Colorful().Hsl()
}

func clampChannel(v int) int {
	return max(0, min(maxChannel, v))
}
