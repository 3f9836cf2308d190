package codec

import (
	"io"

	"github.com/ulikunitz/xz"
)

// xzCodec wraps the ulikunitz xz implementation. Its reader has no
// Close method, so the adapter adds a no-op one.
type xzCodec struct{}

func (xzCodec) String() string { return "xz" }

func (xzCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return xz.NewWriter(w)
}

func (xzCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	zr, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(zr), nil
}
