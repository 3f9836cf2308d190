package format

import (
	"errors"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name      string
		container Container
		codec     Codec
	}{
		{"backup.tar.bz2", Tar, Bzip2},
		{"backup.tar.zst", Tar, Zstd},
		{"backup.tar.gz", Tar, Gzip},
		{"backup.tar.xz", Tar, XZ},
		{"backup.tar.lz4", Tar, LZ4},
		{"backup.tbz2", Tar, Bzip2},
		{"backup.tzst", Tar, Zstd},
		{"backup.tgz", Tar, Gzip},
		{"backup.txz", Tar, XZ},
		{"notes.txt.bz2", Raw, Bzip2},
		{"notes.txt.zst", Raw, Zstd},
		{"notes.txt.gz", Raw, Gzip},
		{"notes.txt.xz", Raw, XZ},
		{"notes.txt.lz4", Raw, LZ4},
		{"DATA.TAR.ZST", Tar, Zstd},
		{"Mixed.Case.BZ2", Raw, Bzip2},
		{"/var/backups/daily.tar.gz", Tar, Gzip},
		{"dotted.name.v2.tar.xz", Tar, XZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Detect(tt.name)
			if err != nil {
				t.Fatalf("Detect(%q): %v", tt.name, err)
			}
			if spec.Container != tt.container || spec.Codec != tt.codec {
				t.Errorf("Detect(%q) = %s/%s, want %s/%s",
					tt.name, spec.Container, spec.Codec, tt.container, tt.codec)
			}
		})
	}
}

func TestDetectUnsupported(t *testing.T) {
	names := []string{
		"data.xyz",
		"archive.tar", // uncompressed tar is not supported
		"plain.txt",
		"noextension",
		"",
		"archive.zip",
	}
	for _, name := range names {
		if _, err := Detect(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Detect(%q) = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestDetectArchive(t *testing.T) {
	tests := []struct {
		destination string
		sourceIsDir bool
		wantErr     error
	}{
		{"out.zst", false, nil},
		{"out.bz2", false, nil},
		{"out.tar.zst", false, nil},
		{"out.tar.zst", true, nil},
		{"out.tgz", true, nil},
		{"out.zst", true, ErrDirectoryRequiresTar},
		{"out.bz2", true, ErrDirectoryRequiresTar},
		{"out.gz", true, ErrDirectoryRequiresTar},
		{"out.weird", true, ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		_, err := DetectArchive(tt.destination, tt.sourceIsDir)
		if tt.wantErr == nil {
			if err != nil {
				t.Errorf("DetectArchive(%q, dir=%v): %v", tt.destination, tt.sourceIsDir, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("DetectArchive(%q, dir=%v) = %v, want %v", tt.destination, tt.sourceIsDir, err, tt.wantErr)
		}
	}
}

func TestTrimSuffix(t *testing.T) {
	tests := []struct {
		archive string
		want    string
	}{
		{"notes.txt.zst", "notes.txt"},
		{"data.bz2", "data"},
		{"REPORT.GZ", "REPORT"},
		{"/tmp/nested/dir/data.xz", "data"},
		{"double.tar.zst", "double"},
		{".zst", ".zst"}, // nothing left to strip
	}
	for _, tt := range tests {
		spec, err := Detect(tt.archive)
		if err != nil {
			t.Fatalf("Detect(%q): %v", tt.archive, err)
		}
		if got := spec.TrimSuffix(tt.archive); got != tt.want {
			t.Errorf("TrimSuffix(%q) = %q, want %q", tt.archive, got, tt.want)
		}
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		archive string
		want    string
	}{
		{"a.tar.zst", "tar+zstd"},
		{"a.tbz2", "tar+bzip2"},
		{"a.lz4", "lz4"},
		{"a.gz", "gzip"},
	}
	for _, tt := range tests {
		spec, err := Detect(tt.archive)
		if err != nil {
			t.Fatalf("Detect(%q): %v", tt.archive, err)
		}
		if got := spec.String(); got != tt.want {
			t.Errorf("Spec for %q = %q, want %q", tt.archive, got, tt.want)
		}
	}
}

// The rules table relies on longer suffixes shadowing their raw tails;
// this guards the ordering when new formats are added.
func TestRulesOrderedLongestFirst(t *testing.T) {
	for i := 1; i < len(rules); i++ {
		if len(rules[i].suffix) > len(rules[i-1].suffix) {
			t.Errorf("rules[%d] %q is longer than rules[%d] %q",
				i, rules[i].suffix, i-1, rules[i-1].suffix)
		}
	}
}
