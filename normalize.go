package ogres

import (
	"fmt"
	"image"
	"image/color"
)

// Normalize converts a raw source buffer to a BGR layer image.
// Alpha is discarded without compositing and gray is expanded to three channels.
func Normalize(src Source) (Image, error) {
	ch := src.Format.Channels()
	if ch == 0 {
		return Image{}, fmt.Errorf("unsupported pixel format %s", src.Format)
	}
	if src.Width < 0 || src.Height < 0 || src.Width > MaxDimension || src.Height > MaxDimension {
		return Image{}, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, src.Width, src.Height)
	}
	n := src.Width * src.Height
	if len(src.Pix) != n*ch {
		return Image{}, fmt.Errorf("%w: %d bytes for %dx%d %s, want %d",
			ErrCorruptLayer, len(src.Pix), src.Width, src.Height, src.Format, n*ch)
	}

	out := Image{Width: src.Width, Height: src.Height, Pix: make([]byte, n*BytesPerPixel)}
	for i := 0; i < n; i++ {
		s := src.Pix[i*ch : i*ch+ch]
		d := out.Pix[i*BytesPerPixel : i*BytesPerPixel+BytesPerPixel]
		switch src.Format {
		case FormatBGR, FormatBGRA:
			d[0], d[1], d[2] = s[0], s[1], s[2]
		case FormatRGB, FormatRGBA:
			d[0], d[1], d[2] = s[2], s[1], s[0]
		case FormatGray:
			d[0], d[1], d[2] = s[0], s[0], s[0]
		}
	}
	return out, nil
}

// FromImage converts img to a BGR layer image.
// Straight (non-premultiplied) color values are kept and alpha is dropped.
func FromImage(img image.Image) Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := Image{Width: w, Height: h, Pix: make([]byte, w*h*BytesPerPixel)}

	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < w; x++ {
				s := row[x*4 : x*4+4]
				i := (y*w + x) * BytesPerPixel
				out.Pix[i], out.Pix[i+1], out.Pix[i+2] = s[2], s[1], s[0]
			}
		}
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			for x := 0; x < w; x++ {
				i := (y*w + x) * BytesPerPixel
				out.Pix[i], out.Pix[i+1], out.Pix[i+2] = row[x], row[x], row[x]
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl := nrgbAt(img, b.Min.X+x, b.Min.Y+y)
				i := (y*w + x) * BytesPerPixel
				out.Pix[i], out.Pix[i+1], out.Pix[i+2] = bl, g, r
			}
		}
	}
	return out
}

// ToImage returns the layer as an opaque NRGBA image.
func (m Image) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for i := 0; i < m.Width*m.Height; i++ {
		s := m.Pix[i*BytesPerPixel:]
		d := img.Pix[i*4 : i*4+4]
		d[0], d[1], d[2], d[3] = s[2], s[1], s[0], 0xff
	}
	return img
}

func nrgbAt(img image.Image, x, y int) (uint8, uint8, uint8) {
	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}
