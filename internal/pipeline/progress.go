package pipeline

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// Progress observes per-review processing. Implementations receive
// notifications only; they cannot influence processing order or
// results.
type Progress interface {
	Start(total int)
	Step()
	Finish()
}

// NopProgress ignores all notifications.
type NopProgress struct{}

func (NopProgress) Start(int) {}
func (NopProgress) Step()     {}
func (NopProgress) Finish()   {}

// BarProgress draws a terminal progress bar on stderr.
type BarProgress struct {
	bar *progressbar.ProgressBar
}

func (b *BarProgress) Start(total int) {
	b.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Processing reviews"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *BarProgress) Step() {
	if b.bar != nil {
		_ = b.bar.Add(1)
	}
}

func (b *BarProgress) Finish() {
	if b.bar != nil {
		_ = b.bar.Finish()
	}
}
