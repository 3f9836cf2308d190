// Package codec adapts the external compression implementations behind
// a single streaming contract, so callers pick an algorithm by format
// kind and never touch a library API directly.
package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"zarc/pkg/format"
)

// chunkSize is the window used to feed a compressor when a progress
// callback is active. Chunking only drives reporting: the stream is
// never flushed between windows, so output bytes are identical to a
// single-shot write.
const chunkSize = 8192

// ErrCorrupt reports malformed or truncated compressed input.
var ErrCorrupt = errors.New("invalid or corrupted compressed data")

// Codec wraps one compression algorithm as a pair of stream
// transformers.
type Codec interface {
	// Writer wraps w so that writes are compressed. Close finalizes
	// the stream and must be called exactly once.
	Writer(w io.Writer) (io.WriteCloser, error)

	// Reader wraps r so that reads are decompressed.
	Reader(r io.Reader) (io.ReadCloser, error)

	// String returns the codec name.
	String() string
}

// For returns the Codec implementation for a dispatched format kind.
func For(kind format.Codec) (Codec, error) {
	switch kind {
	case format.Bzip2:
		return bzip2Codec{}, nil
	case format.Zstd:
		return zstdCodec{}, nil
	case format.Gzip:
		return gzipCodec{}, nil
	case format.XZ:
		return xzCodec{}, nil
	case format.LZ4:
		return lz4Codec{}, nil
	default:
		return nil, fmt.Errorf("no codec for kind %s", kind)
	}
}

// Compress writes data through kind's streaming compressor into dst.
// When report is non-nil the input is fed in fixed windows with a
// callback after each, carrying (bytes consumed, total bytes); the
// compressed output is identical either way.
func Compress(dst io.Writer, data []byte, kind format.Codec, report func(current, total int64)) error {
	c, err := For(kind)
	if err != nil {
		return err
	}
	w, err := c.Writer(dst)
	if err != nil {
		return fmt.Errorf("open %s writer: %w", c, err)
	}

	total := int64(len(data))
	if report == nil {
		if _, err := w.Write(data); err != nil {
			w.Close()
			return fmt.Errorf("compress with %s: %w", c, err)
		}
	} else {
		report(0, total)
		for off := int64(0); off < total; off += chunkSize {
			end := off + chunkSize
			if end > total {
				end = total
			}
			if _, err := w.Write(data[off:end]); err != nil {
				w.Close()
				return fmt.Errorf("compress with %s: %w", c, err)
			}
			report(end, total)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize %s stream: %w", c, err)
	}
	return nil
}

// Decompress expands data through kind's streaming decompressor into
// dst. Progress counts compressed bytes consumed, since the expanded
// size is unknown until the stream ends. Malformed input comes back as
// an error wrapping ErrCorrupt, never a panic.
func Decompress(dst io.Writer, data []byte, kind format.Codec, report func(current, total int64)) error {
	c, err := For(kind)
	if err != nil {
		return err
	}

	total := int64(len(data))
	var src io.Reader = bytes.NewReader(data)
	if report != nil {
		report(0, total)
		src = &countingReader{r: src, total: total, report: report}
	}

	r, err := c.Reader(src)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, c, err)
	}
	defer r.Close()

	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(dst, r, buf); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, c, err)
	}
	if report != nil {
		report(total, total)
	}
	return nil
}

// countingReader reports cumulative bytes consumed from the wrapped
// reader after every read.
type countingReader struct {
	r       io.Reader
	current int64
	total   int64
	report  func(current, total int64)
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 {
		cr.current += int64(n)
		cr.report(cr.current, cr.total)
	}
	return n, err
}
