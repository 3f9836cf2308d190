// Package format resolves archive file names to a (container, codec)
// pair. The container decides how source files are combined into one
// stream (a tar archive, or a single file's bytes used directly); the
// codec is the compression applied to that stream.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Container identifies how source files are combined before the codec
// is applied.
type Container uint8

const (
	// Raw compresses a single file's bytes directly. Only valid for
	// file sources.
	Raw Container = iota

	// Tar serializes the source into a tar stream first. Directory
	// sources always require Tar.
	Tar
)

// String returns the human-readable name of a container kind.
func (c Container) String() string {
	switch c {
	case Raw:
		return "raw"
	case Tar:
		return "tar"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Codec identifies the compression algorithm applied to the container
// bytes.
type Codec uint8

const (
	// Bzip2 is the standard bzip2 stream format.
	Bzip2 Codec = iota

	// Zstd is the zstandard frame format (RFC 8478).
	Zstd

	// Gzip is the gzip format (RFC 1952).
	Gzip

	// XZ is the xz stream format.
	XZ

	// LZ4 is the lz4 frame format.
	LZ4
)

// String returns the human-readable name of a codec kind.
func (c Codec) String() string {
	switch c {
	case Bzip2:
		return "bzip2"
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case XZ:
		return "xz"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

var (
	// ErrUnsupportedFormat reports an archive name whose suffix matches
	// no recognized (container, codec) pair.
	ErrUnsupportedFormat = errors.New("unsupported archive format")

	// ErrDirectoryRequiresTar reports a directory source paired with a
	// raw-container destination.
	ErrDirectoryRequiresTar = errors.New("directory sources require a tar container")
)

// Spec is the (container, codec) pair resolved from an archive name.
type Spec struct {
	Container Container
	Codec     Codec

	suffix string // the table suffix that matched
}

// String returns a short description such as "tar+zstd" or "bzip2".
func (s Spec) String() string {
	if s.Container == Tar {
		return "tar+" + s.Codec.String()
	}
	return s.Codec.String()
}

// TrimSuffix strips the matched suffix from an archive's base name.
// Used to name the output of a raw extraction: "notes.txt.zst" becomes
// "notes.txt".
func (s Spec) TrimSuffix(name string) string {
	base := filepath.Base(name)
	if len(base) > len(s.suffix) && strings.HasSuffix(strings.ToLower(base), s.suffix) {
		return base[:len(base)-len(s.suffix)]
	}
	return base
}

// rules maps recognized suffixes to their format. Entries are ordered
// by descending suffix length and matched first-wins, so ".tar.zst"
// resolves before ".zst" gets a chance. Adding a format is a table
// change, not a control-flow change.
var rules = []struct {
	suffix    string
	container Container
	codec     Codec
}{
	{".tar.bz2", Tar, Bzip2},
	{".tar.zst", Tar, Zstd},
	{".tar.lz4", Tar, LZ4},
	{".tar.gz", Tar, Gzip},
	{".tar.xz", Tar, XZ},
	{".tbz2", Tar, Bzip2},
	{".tzst", Tar, Zstd},
	{".tgz", Tar, Gzip},
	{".txz", Tar, XZ},
	{".bz2", Raw, Bzip2},
	{".zst", Raw, Zstd},
	{".lz4", Raw, LZ4},
	{".gz", Raw, Gzip},
	{".xz", Raw, XZ},
}

// Suffixes returns every recognized suffix in match order, for help and
// error text.
func Suffixes() []string {
	out := make([]string, len(rules))
	for i, r := range rules {
		out[i] = r.suffix
	}
	return out
}

// Detect resolves the (container, codec) pair for an archive name. The
// base name is lower-cased before matching, so "DATA.TAR.ZST" resolves
// the same as "data.tar.zst".
func Detect(name string) (Spec, error) {
	base := strings.ToLower(filepath.Base(name))
	for _, r := range rules {
		if strings.HasSuffix(base, r.suffix) {
			return Spec{Container: r.container, Codec: r.codec, suffix: r.suffix}, nil
		}
	}
	return Spec{}, fmt.Errorf("%w: %q (supported suffixes: %s)",
		ErrUnsupportedFormat, filepath.Base(name), strings.Join(Suffixes(), ", "))
}

// DetectArchive resolves the destination format for an archive
// operation and verifies the container can hold the source: a
// directory source with a raw container is rejected before any I/O.
func DetectArchive(destination string, sourceIsDir bool) (Spec, error) {
	spec, err := Detect(destination)
	if err != nil {
		return Spec{}, err
	}
	if sourceIsDir && spec.Container != Tar {
		return Spec{}, fmt.Errorf("%w (use a suffix such as .tar.zst or .tar.bz2)", ErrDirectoryRequiresTar)
	}
	return spec, nil
}
