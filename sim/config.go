package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/nickng/dinephil/table"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the parameters of a dinner.
type Config struct {
	Philosophers int           // Number of philosophers (and forks).
	Duration     time.Duration // Run time before the dinner ends.
	Refresh      time.Duration // Time between display frames.
	ThinkMin     time.Duration
	ThinkMax     time.Duration
	EatMin       time.Duration
	EatMax       time.Duration
	Clear        bool // Clear the screen between frames.
}

// DefaultConfig returns the configuration of the standard dinner: seven
// philosophers for a minute.
func DefaultConfig() *Config {
	return &Config{
		Philosophers: 7,
		Duration:     60 * time.Second,
		Refresh:      200 * time.Millisecond,
		ThinkMin:     table.DefaultThinkMin,
		ThinkMax:     table.DefaultThinkMax,
		EatMin:       table.DefaultEatMin,
		EatMax:       table.DefaultEatMax,
		Clear:        true,
	}
}

// Validate checks that conf describes a dinner that can run.
func (conf *Config) Validate() error {
	if conf.Philosophers < 2 {
		return fmt.Errorf("%w: need at least 2 philosophers, got %d", ErrInvalidConfig, conf.Philosophers)
	}
	if conf.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidConfig, conf.Duration)
	}
	if conf.Refresh <= 0 {
		return fmt.Errorf("%w: refresh must be positive, got %s", ErrInvalidConfig, conf.Refresh)
	}
	if err := checkRange("think", conf.ThinkMin, conf.ThinkMax); err != nil {
		return err
	}
	return checkRange("eat", conf.EatMin, conf.EatMax)
}

func checkRange(phase string, min, max time.Duration) error {
	if min < 0 {
		return fmt.Errorf("%w: %s time must not be negative, got %s", ErrInvalidConfig, phase, min)
	}
	if max < min {
		return fmt.Errorf("%w: %s time range [%s, %s] is inverted", ErrInvalidConfig, phase, min, max)
	}
	return nil
}
