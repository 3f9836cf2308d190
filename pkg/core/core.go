// Package core sequences archive and extract operations: validating
// inputs, building or unpacking containers, running the codec, and
// summarizing the result.
package core

import (
	"errors"
	"io"
	"time"

	"zarc/pkg/progress"
)

// ErrSourceNotFound reports a source path that does not exist.
var ErrSourceNotFound = errors.New("source not found")

// Options selects per-operation behavior.
type Options struct {
	// Progress routes step-by-step updates through the Archiver's
	// reporter and switches the codec to its chunked path.
	Progress bool

	// Benchmark replaces the confirmation line with a timing and size
	// summary.
	Benchmark bool
}

// Result describes a completed operation.
type Result struct {
	Elapsed    time.Duration
	SourceSize int64   // bytes read (uncompressed for archive, compressed for extract)
	DestSize   int64   // bytes produced
	Ratio      float64 // destination size as a percentage of source size
	Files      int     // files archived or extracted
}

// Archiver runs archive and extract operations, printing confirmations
// to its output writer and progress through its reporter.
type Archiver struct {
	out      io.Writer
	reporter progress.Reporter
}

// New returns an Archiver writing confirmations to out. A nil reporter
// behaves like progress.Discard.
func New(out io.Writer, reporter progress.Reporter) *Archiver {
	if out == nil {
		out = io.Discard
	}
	if reporter == nil {
		reporter = progress.Discard
	}
	return &Archiver{out: out, reporter: reporter}
}

// step binds the reporter to one labeled operation stage, or returns
// nil when progress is off so downstream code takes its unchunked path.
func (a *Archiver) step(opts Options, label string) func(current, total int64) {
	if !opts.Progress {
		return nil
	}
	return func(current, total int64) {
		a.reporter.Report(label, current, total)
	}
}

func ratio(destSize, sourceSize int64) float64 {
	if sourceSize <= 0 {
		return 0
	}
	return float64(destSize) / float64(sourceSize) * 100
}
