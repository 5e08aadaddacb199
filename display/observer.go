package display

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/nickng/dinephil/table"
	"go.uber.org/zap"
)

// Observer periodically renders the registry and ends the dinner once the
// run time is up. Setting the flag is its only effect on the table.
type Observer struct {
	Registry *table.Registry
	Flag     *table.Flag
	Renderer *Renderer
	Clock    clock.Clock
	Interval time.Duration // Time between frames.
	Duration time.Duration // Run time before the flag is set.
	Logger   *zap.Logger

	frames int
}

// Run renders frames until Duration has elapsed, sets the flag, renders a
// final frame and returns. If the flag is set by someone else first it
// renders a final frame and returns straight away.
func (o *Observer) Run() {
	start := o.Clock.Now()
	ticker := o.Clock.Ticker(o.Interval)
	defer ticker.Stop()

	for {
		elapsed := o.Clock.Since(start)
		if elapsed >= o.Duration {
			if o.Flag.Stop() {
				o.Logger.Info("time is up", zap.Duration("elapsed", elapsed))
			}
			o.render(elapsed)
			return
		}
		o.render(elapsed)

		select {
		case <-ticker.C:
		case <-o.Flag.Done():
			o.Logger.Info("stopped early", zap.Duration("elapsed", o.Clock.Since(start)))
			o.render(o.Clock.Since(start))
			return
		}
	}
}

// Frames returns the number of frames rendered. Not safe to call while Run
// is in progress.
func (o *Observer) Frames() int { return o.frames }

func (o *Observer) render(elapsed time.Duration) {
	o.frames++
	if err := o.Renderer.Render(elapsed, o.Duration, o.Registry.Snapshot()); err != nil {
		o.Logger.Warn("render failed", zap.Error(err))
	}
}
