package tarball

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Build serializes entries into a tar stream on w. report, when
// non-nil, is called after each file with (files written, total files).
func Build(w io.Writer, entries []Entry, report func(current, total int64)) error {
	tw := tar.NewWriter(w)
	total := int64(len(entries))
	if report != nil {
		report(0, total)
	}
	for i, e := range entries {
		if err := addFile(tw, e); err != nil {
			tw.Close()
			return err
		}
		if report != nil {
			report(int64(i+1), total)
		}
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("finalize tar stream: %w", err)
	}
	return nil
}

func addFile(tw *tar.Writer, e Entry) error {
	f, err := os.Open(e.Path)
	if err != nil {
		return fmt.Errorf("open %s: %w", e.Path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", e.Path, err)
	}
	hdr, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("header for %s: %w", e.Path, err)
	}
	hdr.Name = e.ArcName

	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", e.ArcName, err)
	}
	if _, err := io.Copy(tw, f); err != nil {
		return fmt.Errorf("write %s: %w", e.ArcName, err)
	}
	return nil
}

// Extract unpacks a tar stream held in data into destDir, creating
// parent directories as needed, and returns the number of files
// written. Entry names that would land outside destDir are rejected
// before anything is written for them. report, when non-nil, is called
// after each entry with (entries processed, total entries).
func Extract(data []byte, destDir string, report func(current, total int64)) (int, error) {
	total, err := countEntries(data)
	if err != nil {
		return 0, err
	}
	if report != nil {
		report(0, total)
	}

	tr := tar.NewReader(bytes.NewReader(data))
	files := 0
	var done int64
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return files, fmt.Errorf("read tar stream: %w", err)
		}

		target, err := securePath(destDir, hdr.Name)
		if err != nil {
			return files, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return files, fmt.Errorf("create directory %s: %w", hdr.Name, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, hdr); err != nil {
				return files, err
			}
			files++
		default:
			// Links, devices, and other special entries are skipped;
			// Build never produces them.
		}

		done++
		if report != nil {
			report(done, total)
		}
	}
	return files, nil
}

// countEntries scans the stream once so extraction can report progress
// against a known total.
func countEntries(data []byte) (int64, error) {
	tr := tar.NewReader(bytes.NewReader(data))
	var n int64
	for {
		_, err := tr.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read tar stream: %w", err)
		}
		n++
	}
}

// securePath joins an archive entry name onto destDir, refusing names
// that escape it. Tar names are slash-separated; absolute names and
// parent-directory segments are both rejected.
func securePath(destDir, name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("tar entry %q escapes destination directory", name)
	}
	return filepath.Join(destDir, cleaned), nil
}

func writeFile(target string, r io.Reader, hdr *tar.Header) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create parent directory for %s: %w", hdr.Name, err)
	}
	mode := hdr.FileInfo().Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", hdr.Name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", hdr.Name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", hdr.Name, err)
	}
	return nil
}
