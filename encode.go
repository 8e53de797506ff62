package ogres

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/vearutop/ogres/internal/wire"
)

// Encode serializes images into an OGRES container, one layer per image in input order.
func Encode(images []Image) ([]byte, error) {
	total, err := payloadSize(images)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+total)
	out = append(out, Magic...)
	out = wire.AppendU16(out, uint16(len(images)))
	out = wire.AppendU32(out, uint32(total))

	for _, img := range images {
		out = wire.AppendU16(out, uint16(img.Width))
		out = wire.AppendU16(out, uint16(img.Height))
		out = wire.AppendU16(out, uint16(img.LayerSize()))
		out = append(out, img.Pix...)
	}

	return out, nil
}

// EncodeTo writes the container to w. Nothing is written if encoding fails.
func EncodeTo(w io.Writer, images []Image) error {
	data, err := Encode(images)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, bytes.NewReader(data))
	return err
}

// EncodeFile writes the container to path. The file is replaced atomically,
// so a failed encode leaves no partial output behind.
func EncodeFile(path string, images []Image) error {
	data, err := Encode(images)
	if err != nil {
		return err
	}
	return renameio.WriteFile(filepath.Clean(path), data, 0o644)
}

// EncodeSources normalizes raw source buffers, dropping any alpha channel, and encodes them.
func EncodeSources(sources []Source) ([]byte, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyInput
	}
	images := make([]Image, 0, len(sources))
	for i, src := range sources {
		img, err := Normalize(src)
		if err != nil {
			return nil, &LayerError{Index: i, Op: "encode", Err: err}
		}
		images = append(images, img)
	}
	return Encode(images)
}

// payloadSize validates every layer and returns the sum of layer record lengths.
func payloadSize(images []Image) (int, error) {
	if len(images) == 0 {
		return 0, ErrEmptyInput
	}
	if len(images) > MaxLayers {
		return 0, fmt.Errorf("%w: %d layers exceeds %d", ErrDimensionOverflow, len(images), MaxLayers)
	}

	total := 0
	for i, img := range images {
		if err := img.Validate(); err != nil {
			return 0, &LayerError{Index: i, Op: "encode", Err: err}
		}
		total += img.LayerSize()
	}
	// MaxLayers * MaxLayerSize stays below MaxTotalSize, so the sum always fits.
	return total, nil
}
