package ogres

import "fmt"

// Image is a single layer: an opaque raster in BGR order, row-major, top to bottom.
type Image struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 3
}

// PixelLen returns the number of pixel bytes the image dimensions require.
func (m Image) PixelLen() int {
	return m.Width * m.Height * BytesPerPixel
}

// LayerSize returns sz_total for the image: the layer header plus pixel payload.
func (m Image) LayerSize() int {
	return LayerHeaderSize + m.PixelLen()
}

// At returns the blue, green and red components at x, y.
func (m Image) At(x, y int) (b, g, r uint8) {
	i := (y*m.Width + x) * BytesPerPixel
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Validate checks that the image can be stored as a layer.
func (m Image) Validate() error {
	if m.Width < 0 || m.Height < 0 {
		return fmt.Errorf("%w: negative size %dx%d", ErrDimensionOverflow, m.Width, m.Height)
	}
	if m.Width > MaxDimension || m.Height > MaxDimension {
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrDimensionOverflow, m.Width, m.Height, MaxDimension)
	}
	if size := m.LayerSize(); size > MaxLayerSize {
		return fmt.Errorf("%w: layer size %d exceeds %d", ErrDimensionOverflow, size, MaxLayerSize)
	}
	if len(m.Pix) != m.PixelLen() {
		return fmt.Errorf("%w: %d pixel bytes for %dx%d, want %d",
			ErrCorruptLayer, len(m.Pix), m.Width, m.Height, m.PixelLen())
	}
	return nil
}

// Header is the decoded global header.
type Header struct {
	LayerCount uint16
	TotalSize  uint32
}

// LayerInfo describes the geometry of one layer record.
type LayerInfo struct {
	Index  int
	Width  int
	Height int
	Size   int // sz_total
	Offset int // absolute offset of the layer header
}

// PixelFormat identifies the channel layout of a Source buffer.
type PixelFormat int

const (
	FormatBGR PixelFormat = iota
	FormatRGB
	FormatBGRA
	FormatRGBA
	FormatGray
)

// Channels returns the number of bytes per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatBGR, FormatRGB:
		return 3
	case FormatBGRA, FormatRGBA:
		return 4
	case FormatGray:
		return 1
	default:
		return 0
	}
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) HasAlpha() bool {
	return f == FormatBGRA || f == FormatRGBA
}

func (f PixelFormat) String() string {
	switch f {
	case FormatBGR:
		return "BGR"
	case FormatRGB:
		return "RGB"
	case FormatBGRA:
		return "BGRA"
	case FormatRGBA:
		return "RGBA"
	case FormatGray:
		return "Gray"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// Source is a raw decoded image as supplied by an image loader.
type Source struct {
	Width  int
	Height int
	Format PixelFormat
	Pix    []byte // len = Width * Height * Format.Channels()
}

// DecodeOptions controls container decoding.
type DecodeOptions struct {
	// IgnoreTotalSize skips the check of the declared payload size against the
	// layer records, navigating by per-layer sz_total only.
	IgnoreTotalSize bool
}
