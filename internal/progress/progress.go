// Package progress wraps the terminal progress bar behind a small interface
// so the fingerprinting and verification phases stay testable.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Sink receives progress notifications from a phase working through a known
// number of files.
type Sink interface {
	Total(n int)
	Add(n int)
	Finish()
}

// Options configures progress bar behavior
type Options struct {
	Quiet       bool
	Description string
}

// Manager renders a file-count progress bar to stderr.
type Manager struct {
	options Options
	bar     *progressbar.ProgressBar
}

// NewManager creates a new progress manager
func NewManager(options Options) *Manager {
	return &Manager{options: options}
}

// Total initializes the bar for n files.
func (pm *Manager) Total(n int) {
	if pm.options.Quiet {
		return
	}

	description := pm.options.Description
	if description == "" {
		description = "Processing files"
	}

	pm.bar = progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(65),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			// #nosec G104 - progress bar completion message is not critical
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
	)
}

// Add advances the bar by n files.
func (pm *Manager) Add(n int) {
	if pm.options.Quiet || pm.bar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.bar.Add(n)
}

// Finish marks the bar as complete.
func (pm *Manager) Finish() {
	if pm.options.Quiet || pm.bar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.bar.Finish()
}

// Nop is a Sink that discards all notifications. Use in tests.
type Nop struct{}

func (Nop) Total(int) {}
func (Nop) Add(int)   {}
func (Nop) Finish()   {}
