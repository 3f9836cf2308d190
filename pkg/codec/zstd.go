package codec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// zstdCodec wraps the klauspost zstandard implementation.
type zstdCodec struct{}

func (zstdCodec) String() string { return "zstd" }

func (zstdCodec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func (zstdCodec) Reader(r io.Reader) (io.ReadCloser, error) {
	d, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return d.IOReadCloser(), nil
}
