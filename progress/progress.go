// Package progress reports render progress as a thin adapter over a
// third-party terminal progress bar.
package progress

import "github.com/schollz/progressbar/v3"

// Bar reports completed units of work against a known total. It is safe
// to call CompleteIteration concurrently from every render row worker;
// the underlying library serializes its own state.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New returns a Bar over totalSteps units of work, labeled description.
func New(totalSteps int, description string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(totalSteps,
			progressbar.OptionSetDescription(description),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// CompleteIteration advances the bar by one unit of work.
func (b *Bar) CompleteIteration() {
	_ = b.bar.Add(1)
}
