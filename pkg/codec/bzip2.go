package codec

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

// bzip2Codec wraps the dsnet bzip2 implementation. The standard
// library only decompresses bzip2, so both directions go through the
// same external package.
type bzip2Codec struct{}

func (bzip2Codec) String() string { return "bzip2" }

func (bzip2Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: bzip2.DefaultCompression})
}

func (bzip2Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, nil)
}
