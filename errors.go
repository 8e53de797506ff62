package ogres

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when encoding an empty image sequence.
	ErrEmptyInput = errors.New("ogres: no images to encode")
	// ErrDimensionOverflow is returned when a size does not fit its header field.
	ErrDimensionOverflow = errors.New("ogres: dimension overflow")
	// ErrMalformedHeader is returned for a short buffer or a bad signature.
	ErrMalformedHeader = errors.New("ogres: malformed header")
	// ErrTruncatedLayer is returned when a layer extends past the end of data.
	ErrTruncatedLayer = errors.New("ogres: truncated layer")
	// ErrCorruptLayer is returned when sz_total disagrees with the layer dimensions.
	ErrCorruptLayer = errors.New("ogres: corrupt layer")
	// ErrSizeMismatch is returned when the declared total size disagrees with the layer records.
	ErrSizeMismatch = errors.New("ogres: size mismatch")
)

// LayerError reports a failure tied to a specific layer.
type LayerError struct {
	Index int
	Op    string // "encode" or "decode"
	Err   error
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("%s layer %d: %v", e.Op, e.Index, e.Err)
}

func (e *LayerError) Unwrap() error { return e.Err }
