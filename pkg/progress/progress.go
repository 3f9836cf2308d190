// Package progress defines how long-running operations report their
// advancement, plus a terminal renderer for it.
package progress

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives updates during a long-running operation. current
// never decreases within one labeled step and equals total exactly
// when the step completes. Implementations must tolerate repeated
// updates carrying the same values.
type Reporter interface {
	Report(label string, current, total int64)
}

// Discard drops all updates. Operations run with Discard when progress
// display is not requested.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(string, int64, int64) {}

// Console returns a Reporter that renders a terminal progress bar on
// w. A new bar starts whenever the label or total changes; updates
// within one step redraw the same bar.
func Console(w io.Writer) Reporter {
	return &console{w: w}
}

type console struct {
	w       io.Writer
	bar     *progressbar.ProgressBar
	label   string
	current int64
	total   int64
}

func (c *console) Report(label string, current, total int64) {
	if total <= 0 {
		return
	}
	if c.bar == nil && label == c.label && total == c.total && current == c.current {
		// The step already finished at this value.
		return
	}
	if c.bar == nil || label != c.label || total != c.total {
		c.finish()
		c.label, c.total = label, total
		c.bar = newBar(c.w, label, total)
	}
	c.current = current
	_ = c.bar.Set64(current)
	if current >= total {
		c.finish()
	}
}

// finish completes the active bar so the next line starts clean.
func (c *console) finish() {
	if c.bar == nil {
		return
	}
	_ = c.bar.Finish()
	fmt.Fprintln(c.w)
	c.bar = nil
}

func newBar(w io.Writer, label string, total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(label),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

// FormatSize renders a byte count in human-readable binary units.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
