package ogres

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder.
	_ "image/jpeg" // Register JPEG decoder.
	_ "image/png"  // Register PNG decoder.
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // Register BMP decoder.
	_ "golang.org/x/image/tiff" // Register TIFF decoder.
	_ "golang.org/x/image/webp" // Register WEBP decoder.
)

// SupportedExtensions lists file name extensions LoadImage accepts.
var SupportedExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// IsSupportedFile reports whether the file name has a supported image extension.
func IsSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Interpolation selects the resampling kernel used when fitting images.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

var interpolationNames = map[string]Interpolation{
	"nearest":  InterpolationNearest,
	"bilinear": InterpolationBilinear,
	"bicubic":  InterpolationBicubic,
	"mitchell": InterpolationMitchellNetravali,
	"lanczos2": InterpolationLanczos2,
	"lanczos3": InterpolationLanczos3,
}

// ParseInterpolation maps a kernel name such as "bilinear" to its Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	if i, ok := interpolationNames[strings.ToLower(name)]; ok {
		return i, nil
	}
	return 0, fmt.Errorf("unknown interpolation %q", name)
}

func (i Interpolation) resizeFunc() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// LoadOptions controls how source images are turned into layers.
type LoadOptions struct {
	// Fit downscales images that would not fit a single layer, keeping the aspect ratio.
	Fit bool
	// Interpolation selects the kernel used by Fit.
	Interpolation Interpolation
}

// LoadImage decodes the image file at path and converts it to a layer.
func LoadImage(path string, opts ...func(o *LoadOptions)) (Image, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Image{}, err
	}
	return DecodeImage(bytes.NewReader(data), opts...)
}

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WEBP stream and converts it to a layer.
func DecodeImage(r io.Reader, opts ...func(o *LoadOptions)) (Image, error) {
	opt := LoadOptions{Interpolation: InterpolationBilinear}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return Image{}, err
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Image{}, errors.New("invalid image dimensions")
	}

	if opt.Fit {
		if w, h := FitSize(b.Dx(), b.Dy()); w != b.Dx() || h != b.Dy() {
			img = resize.Resize(uint(w), uint(h), img, opt.Interpolation.resizeFunc())
		}
	}

	m := FromImage(img)
	if err := m.Validate(); err != nil {
		return Image{}, err
	}
	return m, nil
}

// FitSize returns the largest dimensions with the aspect ratio of w x h that fit
// a single layer. Dimensions that already fit are returned unchanged.
func FitSize(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return w, h
	}
	if w <= MaxDimension && h <= MaxDimension && w*h <= MaxLayerPixels {
		return w, h
	}
	scale := math.Sqrt(float64(MaxLayerPixels) / (float64(w) * float64(h)))
	nw := int(math.Max(1, math.Floor(float64(w)*scale)))
	nh := int(math.Max(1, math.Floor(float64(h)*scale)))
	for nw*nh > MaxLayerPixels {
		if nw >= nh {
			nw--
		} else {
			nh--
		}
	}
	return nw, nh
}
