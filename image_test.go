package qoig_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/kriticalflare/qoig"
)

func TestImageEncodeDecodeRoundTrip(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 5, A: 255})
		}
	}

	var buf bytes.Buffer
	if _, err := qoig.ImageEncode(&buf, src, qoig.PlainQOIConfig()); err != nil {
		t.Fatalf("ImageEncode: %v", err)
	}

	got, err := qoig.ImageDecode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ImageDecode: %v", err)
	}
	if !got.Bounds().Eq(src.Bounds()) {
		t.Fatalf("decoded bounds %v, want %v", got.Bounds(), src.Bounds())
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got.At(x, y) != src.At(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got.At(x, y), src.At(x, y))
			}
		}
	}
}

func TestDecodeConfigReadsHeaderOnly(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 5, 7))
	var buf bytes.Buffer
	if _, err := qoig.ImageEncode(&buf, src, qoig.PlainQOIConfig()); err != nil {
		t.Fatalf("ImageEncode: %v", err)
	}
	cfg, err := qoig.DecodeConfig(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("DecodeConfig: %v", err)
	}
	if cfg.Width != 5 || cfg.Height != 7 {
		t.Fatalf("DecodeConfig dims = %dx%d, want 5x7", cfg.Width, cfg.Height)
	}
}
