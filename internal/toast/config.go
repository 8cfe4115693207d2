package toast

import "time"

// Default timings.
const (
	DefaultDuration      = 5000 * time.Millisecond
	DefaultTick          = 50 * time.Millisecond
	DefaultExitAnimation = 300 * time.Millisecond
)

// Config holds the toast timings.
type Config struct {
	// Duration is how long a toast stays in the showing phase.
	Duration time.Duration
	// Tick is the progress refresh interval.
	Tick time.Duration
	// ExitAnimation is how long the fading phase lasts when the toast is
	// rendered.
	ExitAnimation time.Duration
}

func (c Config) withDefaults() Config {
	if c.Duration <= 0 {
		c.Duration = DefaultDuration
	}
	if c.Tick <= 0 {
		c.Tick = DefaultTick
	}
	if c.Tick > c.Duration {
		c.Tick = c.Duration
	}
	if c.ExitAnimation <= 0 {
		c.ExitAnimation = DefaultExitAnimation
	}
	return c
}

// step is the progress decrement applied per tick: 100 / (Duration/Tick).
func (c Config) step() float64 {
	return 100 * float64(c.Tick) / float64(c.Duration)
}
