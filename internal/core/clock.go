package core

import "time"

// maxFrameTime caps how much wall time a single frame may feed into the
// accumulator, so a stalled terminal does not trigger a burst of catch-up ticks.
const maxFrameTime = 250 * time.Millisecond

// FixedStep converts variable render-frame durations into a whole number of
// fixed simulation ticks. Spawn cadence and speed scaling are expressed in
// ticks, so they stay the same regardless of how fast the host renders.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep creates a clock running tickRate simulation ticks per second.
// Non-positive rates fall back to 60.
func NewFixedStep(tickRate int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FixedStep{
		step: time.Second / time.Duration(tickRate),
	}
}

// Step returns the duration of one simulation tick.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance feeds elapsed wall time into the clock and returns how many ticks
// should run now. The remainder carries over to the next call.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}

	f.accumulator += elapsed
	ticks := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(ticks) * f.step
	return ticks
}
