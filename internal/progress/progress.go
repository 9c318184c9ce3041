// Package progress wraps a progress bar for multi-dataset loading.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Tracker wraps a progress bar written to stderr so it never pollutes
// redirected output.
type Tracker struct {
	bar *progressbar.ProgressBar
}

// NewTracker creates a progress bar with the given label and total count.
func NewTracker(label string, total int) *Tracker {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription(label),
		progressbar.OptionUseANSICodes(true),
		progressbar.OptionSetElapsedTime(false),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	return &Tracker{bar: bar}
}

// Tick increments the progress by 1. Safe for concurrent use.
func (t *Tracker) Tick() {
	t.bar.Add(1)
}

// Finish clears the bar completely.
func (t *Tracker) Finish() {
	t.bar.Finish()
	t.bar.Clear()
}
