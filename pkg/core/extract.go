package core

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"zarc/pkg/codec"
	"zarc/pkg/format"
	"zarc/pkg/tarball"
)

// Extract unpacks the archive at src into destDir, creating it (with
// parents) when missing. Tar containers are unpacked entry by entry;
// raw containers produce a single file named by stripping the codec
// suffix from the archive name.
func (a *Archiver) Extract(src, destDir string, opts Options) (*Result, error) {
	start := time.Now()

	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return nil, fmt.Errorf("stat archive: %w", err)
	}

	spec, err := format.Detect(src)
	if err != nil {
		return nil, err
	}

	if destDir == "" {
		destDir = "."
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("create destination directory: %w", err)
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	var raw bytes.Buffer
	if err := codec.Decompress(&raw, data, spec.Codec, a.step(opts, "Decompressing")); err != nil {
		return nil, err
	}

	res := &Result{SourceSize: int64(len(data)), DestSize: int64(raw.Len())}
	switch spec.Container {
	case format.Tar:
		count, err := tarball.Extract(raw.Bytes(), destDir, a.step(opts, "Unpacking"))
		if err != nil {
			return nil, err
		}
		res.Files = count
	default:
		target := filepath.Join(destDir, spec.TrimSuffix(src))
		if err := os.WriteFile(target, raw.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", target, err)
		}
		res.Files = 1
	}
	res.Elapsed = time.Since(start)
	res.Ratio = ratio(res.DestSize, res.SourceSize)

	if opts.Benchmark {
		fmt.Fprintf(a.out, "Extraction completed in %.2fs\n", res.Elapsed.Seconds())
	} else {
		fmt.Fprintf(a.out, "Extracted %d file(s) to: %s\n", res.Files, destDir)
	}
	return res, nil
}
