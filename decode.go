package ogres

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vearutop/ogres/internal/wire"
)

// Decode parses an OGRES container and returns its layers in file order.
// Pixel buffers are copied, so the result does not alias data.
//
// By default the declared total size must match the layer records exactly and
// any trailing data after the last layer is an ErrSizeMismatch. Set
// DecodeOptions.IgnoreTotalSize to navigate by per-layer sizes only.
func Decode(data []byte, opts ...func(o *DecodeOptions)) ([]Image, error) {
	var images []Image
	_, err := walk(data, decodeOptions(opts), func(info LayerInfo, pix []byte) {
		images = append(images, Image{
			Width:  info.Width,
			Height: info.Height,
			Pix:    append([]byte(nil), pix...),
		})
	})
	if err != nil {
		return nil, err
	}
	return images, nil
}

// DecodeReader reads r to the end and decodes the container.
func DecodeReader(r io.Reader, opts ...func(o *DecodeOptions)) ([]Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// DecodeFile reads and decodes the container stored at path.
func DecodeFile(path string, opts ...func(o *DecodeOptions)) ([]Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// Inspect validates the container structure and reports its header and
// layer geometry without copying pixel data.
func Inspect(data []byte, opts ...func(o *DecodeOptions)) (*Header, []LayerInfo, error) {
	var layers []LayerInfo
	h, err := walk(data, decodeOptions(opts), func(info LayerInfo, _ []byte) {
		layers = append(layers, info)
	})
	if err != nil {
		return nil, nil, err
	}
	return &h, layers, nil
}

func decodeOptions(opts []func(o *DecodeOptions)) DecodeOptions {
	var opt DecodeOptions
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	return opt
}

func readHeader(r *wire.Reader) (Header, error) {
	var h Header
	magic, err := r.Bytes(len(Magic))
	if err != nil {
		return h, fmt.Errorf("%w: need %d bytes", ErrMalformedHeader, HeaderSize)
	}
	if !bytes.Equal(magic, []byte(Magic)) {
		return h, fmt.Errorf("%w: bad signature %q", ErrMalformedHeader, magic)
	}
	if h.LayerCount, err = r.U16(); err != nil {
		return h, fmt.Errorf("%w: need %d bytes", ErrMalformedHeader, HeaderSize)
	}
	if h.TotalSize, err = r.U32(); err != nil {
		return h, fmt.Errorf("%w: need %d bytes", ErrMalformedHeader, HeaderSize)
	}
	return h, nil
}

// walk visits every layer record. A structural violation stops the walk:
// layer offsets are only known by trusting the sizes of all prior layers.
func walk(data []byte, opt DecodeOptions, visit func(info LayerInfo, pix []byte)) (Header, error) {
	r := wire.NewReader(data)
	h, err := readHeader(r)
	if err != nil {
		return h, err
	}

	for i := 0; i < int(h.LayerCount); i++ {
		info, pix, err := readLayer(r, i)
		if err != nil {
			return h, &LayerError{Index: i, Op: "decode", Err: err}
		}
		visit(info, pix)
	}

	if opt.IgnoreTotalSize {
		return h, nil
	}
	consumed := r.Offset() - HeaderSize
	if uint64(consumed) != uint64(h.TotalSize) {
		return h, fmt.Errorf("%w: header declares %d payload bytes, layers use %d",
			ErrSizeMismatch, h.TotalSize, consumed)
	}
	if r.Remaining() != 0 {
		return h, fmt.Errorf("%w: %d trailing bytes", ErrSizeMismatch, r.Remaining())
	}
	return h, nil
}

func readLayer(r *wire.Reader, idx int) (LayerInfo, []byte, error) {
	info := LayerInfo{Index: idx, Offset: r.Offset()}
	if r.Remaining() < LayerHeaderSize {
		return info, nil, fmt.Errorf("%w: %d bytes left for a %d-byte header",
			ErrTruncatedLayer, r.Remaining(), LayerHeaderSize)
	}

	// Bounds were checked above.
	w, _ := r.U16()
	h, _ := r.U16()
	sz, _ := r.U16()
	info.Width, info.Height, info.Size = int(w), int(h), int(sz)

	pixLen := info.Size - LayerHeaderSize
	if pixLen < 0 {
		return info, nil, fmt.Errorf("%w: sz_total %d is smaller than the layer header",
			ErrCorruptLayer, info.Size)
	}
	if want := info.Width * info.Height * BytesPerPixel; pixLen != want {
		return info, nil, fmt.Errorf("%w: sz_total %d for %dx%d, want %d",
			ErrCorruptLayer, info.Size, info.Width, info.Height, LayerHeaderSize+want)
	}

	pix, err := r.Bytes(pixLen)
	if err != nil {
		return info, nil, fmt.Errorf("%w: %d bytes left for %d pixel bytes",
			ErrTruncatedLayer, r.Remaining(), pixLen)
	}
	return info, pix, nil
}
