package codec

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Codec wraps the pierrec lz4 frame implementation.
type lz4Codec struct{}

func (lz4Codec) String() string { return "lz4" }

func (lz4Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

func (lz4Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}
