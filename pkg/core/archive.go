package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zarc/pkg/codec"
	"zarc/pkg/format"
	"zarc/pkg/progress"
	"zarc/pkg/tarball"
)

// Archive compresses the file or directory at src into dst, whose
// suffix selects the container and codec. The destination appears only
// after the whole stream is written: bytes go to a temporary file that
// is renamed over dst on success.
func (a *Archiver) Archive(src, dst string, opts Options) (*Result, error) {
	start := time.Now()

	info, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return nil, fmt.Errorf("stat source: %w", err)
	}

	spec, err := format.DetectArchive(dst, info.IsDir())
	if err != nil {
		return nil, err
	}

	entries, err := tarball.Collect(src)
	if err != nil {
		return nil, err
	}
	sourceSize := tarball.TotalSize(entries)

	var data []byte
	switch spec.Container {
	case format.Tar:
		if opts.Progress {
			fmt.Fprintf(a.out, "Files to archive: %d\n", len(entries))
		}
		var buf bytes.Buffer
		if err := tarball.Build(&buf, entries, a.step(opts, "Archiving")); err != nil {
			return nil, err
		}
		data = buf.Bytes()
	default:
		report := a.step(opts, "Reading")
		if report != nil {
			report(0, sourceSize)
		}
		data, err = os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		if report != nil {
			report(sourceSize, sourceSize)
		}
	}

	destSize, err := a.writeCompressed(dst, data, spec.Codec, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Elapsed:    time.Since(start),
		SourceSize: sourceSize,
		DestSize:   destSize,
		Ratio:      ratio(destSize, sourceSize),
		Files:      len(entries),
	}
	if opts.Benchmark {
		fmt.Fprintf(a.out, "Archive completed in %.2fs\n", res.Elapsed.Seconds())
		fmt.Fprintf(a.out, "Source size: %s\n", progress.FormatSize(res.SourceSize))
		fmt.Fprintf(a.out, "Archive size: %s\n", progress.FormatSize(res.DestSize))
		fmt.Fprintf(a.out, "Compression ratio: %.1f%%\n", res.Ratio)
	} else {
		fmt.Fprintf(a.out, "Archive created: %s (%s)\n", dst, progress.FormatSize(res.DestSize))
	}
	return res, nil
}

// writeCompressed compresses data into dst by way of a temporary file
// in the same directory, renamed into place only after the codec
// finishes cleanly. A failed run leaves no partial destination behind.
func (a *Archiver) writeCompressed(dst string, data []byte, kind format.Codec, opts Options) (int64, error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, fmt.Errorf("create destination directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("create temporary output: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err := codec.Compress(tmp, data, kind, a.step(opts, "Compressing")); err != nil {
		return 0, err
	}
	info, err := tmp.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("close output: %w", err)
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return 0, fmt.Errorf("finalize output: %w", err)
	}
	committed = true
	return info.Size(), nil
}
