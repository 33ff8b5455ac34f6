package utils

import (
	"bytes"
	"image/color"
	"log"
	"strings"
	"testing"

	"github.com/setanarut/colorextract"
)

func TestSortPaletteByBrightness(t *testing.T) {
	t.Parallel()

	palette := []colorextract.ColorSample{
		colorextract.ParseSample("ffffff"),
		colorextract.ParseSample("0000ff"),
		colorextract.ParseSample("000000"),
		colorextract.ParseSample("00ff00"),
	}
	SortPaletteByBrightness(palette)

	want := []string{"000000", "0000ff", "00ff00", "ffffff"}
	for i, key := range want {
		if palette[i].Key() != key {
			t.Fatalf("position %d: expected %s, got %s", i, key, palette[i].Key())
		}
	}
}

func TestPaletteImage(t *testing.T) {
	t.Parallel()

	if _, err := PaletteImage(nil, 8); err == nil {
		t.Fatal("expected error for empty palette")
	}

	img, err := PaletteImage([]colorextract.ColorSample{
		colorextract.ParseSample("ff0000"),
		colorextract.ParseSample("00ff00"),
	}, 8)
	if err != nil {
		t.Fatalf("palette image: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(12, 4); got != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("unexpected second tile %v", got)
	}
}

func TestShareBar(t *testing.T) {
	t.Parallel()

	red := colorextract.ParseSample("ff0000")
	red.Count = 3
	blue := colorextract.ParseSample("0000ff")
	blue.Count = 1

	img, err := ShareBar([]colorextract.ColorSample{red, blue}, 100, 4)
	if err != nil {
		t.Fatalf("share bar: %v", err)
	}
	if got := img.RGBAAt(74, 0); got != red.RGBA() {
		t.Fatalf("expected red at x=74, got %v", got)
	}
	if got := img.RGBAAt(75, 3); got != blue.RGBA() {
		t.Fatalf("expected blue at x=75, got %v", got)
	}
}

func TestLogObserver(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	obs := NewLogObserver(log.New(&buf, "", 0))
	dst := colorextract.ParseSample("330000")
	dst.Count = 50
	src := colorextract.ParseSample("663333")
	src.Count = 20

	obs.PixelClassified(0, 0, dst, true)
	obs.MergeConsidered(dst, src, true)

	out := buf.String()
	if strings.Contains(out, "pixel") {
		t.Fatalf("pixel events should be quiet by default: %q", out)
	}
	if !strings.Contains(out, "merge #330000 (50) <- #663333 (20)") {
		t.Fatalf("unexpected log output %q", out)
	}

	buf.Reset()
	obs.Pixels = true
	obs.PixelClassified(1, 2, src, false)
	if !strings.Contains(buf.String(), "pixel 1,2 #663333 skip") {
		t.Fatalf("unexpected pixel log %q", buf.String())
	}
}
