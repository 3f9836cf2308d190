package codec

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// gzipCodec wraps the klauspost gzip implementation, a drop-in
// replacement for the standard library with a faster deflate core.
type gzipCodec struct{}

func (gzipCodec) String() string { return "gzip" }

func (gzipCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (gzipCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
