package ogres

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNormalizeDropsAlpha(t *testing.T) {
	rgb, err := Normalize(Source{Width: 1, Height: 1, Format: FormatRGB, Pix: []byte{200, 100, 50}})
	if err != nil {
		t.Fatalf("normalize rgb: %v", err)
	}
	want := mustEncode(t, rgb)

	for _, alpha := range []byte{0, 1, 128, 255} {
		rgba, err := Normalize(Source{Width: 1, Height: 1, Format: FormatRGBA, Pix: []byte{200, 100, 50, alpha}})
		if err != nil {
			t.Fatalf("normalize rgba: %v", err)
		}
		if got := mustEncode(t, rgba); !bytes.Equal(got, want) {
			t.Fatalf("alpha %d: encoded bytes differ\nwant: % x\ngot:  % x", alpha, want, got)
		}
	}
}

func TestNormalizeChannelOrder(t *testing.T) {
	cases := []struct {
		format PixelFormat
		pix    []byte
	}{
		{format: FormatBGR, pix: []byte{3, 2, 1, 6, 5, 4}},
		{format: FormatRGB, pix: []byte{1, 2, 3, 4, 5, 6}},
		{format: FormatBGRA, pix: []byte{3, 2, 1, 9, 6, 5, 4, 0}},
		{format: FormatRGBA, pix: []byte{1, 2, 3, 9, 4, 5, 6, 0}},
	}
	want := []byte{3, 2, 1, 6, 5, 4}
	for _, tc := range cases {
		t.Run(tc.format.String(), func(t *testing.T) {
			img, err := Normalize(Source{Width: 2, Height: 1, Format: tc.format, Pix: tc.pix})
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if !bytes.Equal(img.Pix, want) {
				t.Fatalf("want %v, got %v", want, img.Pix)
			}
		})
	}
}

func TestNormalizeGray(t *testing.T) {
	img, err := Normalize(Source{Width: 2, Height: 1, Format: FormatGray, Pix: []byte{7, 8}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !bytes.Equal(img.Pix, []byte{7, 7, 7, 8, 8, 8}) {
		t.Fatalf("got %v", img.Pix)
	}
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(Source{Width: 2, Height: 2, Format: FormatRGBA, Pix: make([]byte, 12)}); !errors.Is(err, ErrCorruptLayer) {
		t.Fatalf("expected ErrCorruptLayer, got %v", err)
	}
	if _, err := Normalize(Source{Width: MaxDimension + 1, Height: 1, Format: FormatRGB}); !errors.Is(err, ErrDimensionOverflow) {
		t.Fatalf("expected ErrDimensionOverflow, got %v", err)
	}
	if _, err := Normalize(Source{Format: PixelFormat(42)}); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestFromImageNRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	img := FromImage(src)
	if img.Width != 2 || img.Height != 1 {
		t.Fatalf("size %dx%d", img.Width, img.Height)
	}
	if !bytes.Equal(img.Pix, []byte{30, 20, 10, 60, 50, 40}) {
		t.Fatalf("got %v", img.Pix)
	}
}

func TestFromImageSubImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.SetNRGBA(2, 1, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	img := FromImage(src.SubImage(image.Rect(1, 1, 3, 2)))
	if !bytes.Equal(img.Pix, []byte{3, 2, 1, 6, 5, 4}) {
		t.Fatalf("got %v", img.Pix)
	}
}

func TestFromImageGenericModels(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 77})
	if img := FromImage(gray); !bytes.Equal(img.Pix, []byte{77, 77, 77}) {
		t.Fatalf("gray: got %v", img.Pix)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 9, G: 8, B: 7, A: 255})
	if img := FromImage(rgba); !bytes.Equal(img.Pix, []byte{7, 8, 9}) {
		t.Fatalf("rgba: got %v", img.Pix)
	}
}

func TestToImage(t *testing.T) {
	img := Image{Width: 2, Height: 1, Pix: []byte{30, 20, 10, 60, 50, 40}}
	out := img.ToImage()

	if c := out.NRGBAAt(1, 0); c != (color.NRGBA{R: 40, G: 50, B: 60, A: 255}) {
		t.Fatalf("pixel = %+v", c)
	}
	if back := FromImage(out); !bytes.Equal(back.Pix, img.Pix) {
		t.Fatalf("round trip mismatch: %v", back.Pix)
	}

	b, g, r := img.At(0, 0)
	if b != 30 || g != 20 || r != 10 {
		t.Fatalf("At = %d %d %d", b, g, r)
	}
}
