package ogres

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/vearutop/ogres/internal/wire"
)

// IsOGRES performs a streaming signature check without loading the full file.
func IsOGRES(r io.Reader) (bool, error) {
	br := bufio.NewReaderSize(r, HeaderSize)
	sig, err := br.Peek(len(Magic))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return bytes.Equal(sig, []byte(Magic)), nil
}

// ReadHeader reads and validates the global header from r.
// The reader is left positioned at the first layer record.
func ReadHeader(r io.Reader) (*Header, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrMalformedHeader
		}
		return nil, err
	}
	h, err := readHeader(wire.NewReader(buf))
	if err != nil {
		return nil, err
	}
	return &h, nil
}
