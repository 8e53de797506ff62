package ogres

import (
	"errors"
	"fmt"
)

const manifestFormat = "ogres-manifest-1"

// Manifest describes the layer table of a container. It is written next to
// unpacked layers so the container can be rebuilt in the same order.
type Manifest struct {
	Format     string          `json:"format"`
	LayerCount int             `json:"layer_count"`
	TotalSize  int             `json:"total_size"`
	Layers     []ManifestLayer `json:"layers"`
}

// ManifestLayer is a manifest entry for one layer.
type ManifestLayer struct {
	File   string `json:"file,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"sz_total"`
	Offset int    `json:"offset"`
}

// BuildManifest inspects a container and returns its manifest.
func BuildManifest(data []byte, opts ...func(o *DecodeOptions)) (*Manifest, error) {
	h, layers, err := Inspect(data, opts...)
	if err != nil {
		return nil, err
	}
	return newManifest(*h, layers), nil
}

// DecodeManifest decodes the container and builds its manifest in a single pass.
func DecodeManifest(data []byte, opts ...func(o *DecodeOptions)) ([]Image, *Manifest, error) {
	var (
		images []Image
		layers []LayerInfo
	)
	h, err := walk(data, decodeOptions(opts), func(info LayerInfo, pix []byte) {
		layers = append(layers, info)
		images = append(images, Image{
			Width:  info.Width,
			Height: info.Height,
			Pix:    append([]byte(nil), pix...),
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return images, newManifest(h, layers), nil
}

// newManifest records the size the layers actually occupy, which differs from
// the declared one only when it was decoded with IgnoreTotalSize.
func newManifest(h Header, layers []LayerInfo) *Manifest {
	m := &Manifest{
		Format:     manifestFormat,
		LayerCount: int(h.LayerCount),
		Layers:     make([]ManifestLayer, 0, len(layers)),
	}
	for _, l := range layers {
		m.Layers = append(m.Layers, ManifestLayer{Width: l.Width, Height: l.Height, Size: l.Size, Offset: l.Offset})
		m.TotalSize += l.Size
	}
	return m
}

// Validate ensures the manifest is self-consistent.
func (m *Manifest) Validate() error {
	if m == nil {
		return errors.New("manifest is nil")
	}
	if m.Format != manifestFormat {
		return fmt.Errorf("unsupported manifest format %q", m.Format)
	}
	if m.LayerCount != len(m.Layers) {
		return fmt.Errorf("manifest declares %d layers, lists %d", m.LayerCount, len(m.Layers))
	}
	total := 0
	for i, l := range m.Layers {
		if l.Size != LayerHeaderSize+l.Width*l.Height*BytesPerPixel {
			return fmt.Errorf("manifest layer %d: sz_total %d does not match %dx%d", i, l.Size, l.Width, l.Height)
		}
		total += l.Size
	}
	if total != m.TotalSize {
		return fmt.Errorf("manifest total size %d, layers sum to %d", m.TotalSize, total)
	}
	return nil
}

// Check reports whether images match the manifest geometry, layer by layer.
func (m *Manifest) Check(images []Image) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if len(images) != len(m.Layers) {
		return fmt.Errorf("manifest lists %d layers, got %d images", len(m.Layers), len(images))
	}
	for i, l := range m.Layers {
		if images[i].Width != l.Width || images[i].Height != l.Height {
			return fmt.Errorf("layer %d: manifest %dx%d, image %dx%d", i, l.Width, l.Height, images[i].Width, images[i].Height)
		}
	}
	return nil
}
