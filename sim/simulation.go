// Package sim runs a timed dinner: it lays the table, seats the
// philosophers, starts the display and waits for everyone to leave.
package sim // import "github.com/nickng/dinephil/sim"

import (
	"io"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/nickng/dinephil/display"
	"github.com/nickng/dinephil/table"
	"go.uber.org/zap"
)

// Simulation is one dinner.
type Simulation struct {
	Config       *Config
	Table        *table.Table
	Philosophers []*table.Philosopher
	Observer     *display.Observer
	Renderer     *display.Renderer

	Done chan struct{} // Closed when every philosopher and the display have finished.
	Time time.Duration // Time taken by Run.

	clock  clock.Clock
	logger *zap.Logger
}

// New prepares a dinner for conf, rendering to out.
func New(conf *Config, out io.Writer, logger *zap.Logger) (*Simulation, error) {
	return NewWithClock(conf, out, logger, clock.New())
}

// NewWithClock prepares a dinner driven by clk.
func NewWithClock(conf *Config, out io.Writer, logger *zap.Logger, clk clock.Clock) (*Simulation, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	t := table.New(conf.Philosophers)
	t.Think = table.Uniform(conf.ThinkMin, conf.ThinkMax)
	t.Eat = table.Uniform(conf.EatMin, conf.EatMax)
	t.Clock = clk
	t.Logger = logger

	r := display.NewRenderer(out, conf.Clear)
	return &Simulation{
		Config:       conf,
		Table:        t,
		Philosophers: t.Philosophers(),
		Renderer:     r,
		Observer: &display.Observer{
			Registry: t.Registry,
			Flag:     t.Flag,
			Renderer: r,
			Clock:    clk,
			Interval: conf.Refresh,
			Duration: conf.Duration,
			Logger:   logger,
		},
		Done:   make(chan struct{}),
		clock:  clk,
		logger: logger,
	}, nil
}

// Run starts the display and every philosopher, waits for the philosophers to
// leave, then for the display, and prints the summary.
func (s *Simulation) Run() {
	start := s.clock.Now()
	s.logger.Info("dinner started",
		zap.Int("philosophers", s.Config.Philosophers),
		zap.Duration("duration", s.Config.Duration))

	observerDone := make(chan struct{})
	go func() {
		defer close(observerDone)
		s.Observer.Run()
	}()

	var wg sync.WaitGroup
	for _, p := range s.Philosophers {
		wg.Add(1)
		go func(p *table.Philosopher) {
			defer wg.Done()
			p.Dine()
		}(p)
	}
	wg.Wait()
	<-observerDone

	s.Time = s.clock.Since(start)
	if !s.Table.Drained() {
		s.logger.Error("table not drained",
			zap.Int("seats", s.Table.Gate.Held()),
			zap.Int("forks", s.Table.Forks.Held()))
	}
	if err := s.Renderer.Summary(s.Meals(), s.Time); err != nil {
		s.logger.Warn("summary failed", zap.Error(err))
	}
	s.logger.Info("dinner finished", zap.Duration("took", s.Time), zap.Int64s("meals", s.Meals()))
	close(s.Done)
}

// Stop ends the dinner early. Philosophers leave through the usual shutdown
// path and the display renders a final frame.
func (s *Simulation) Stop() {
	if s.Table.Flag.Stop() {
		s.logger.Info("dinner interrupted")
	}
}

// Meals returns the meal count of each philosopher.
func (s *Simulation) Meals() []int64 {
	meals := make([]int64, len(s.Philosophers))
	for i, p := range s.Philosophers {
		meals[i] = p.Meals()
	}
	return meals
}
