package core

import (
	"testing"
	"time"
)

func TestFixedStepAdvance(t *testing.T) {
	clock := NewFixedStep(100) // 10ms per tick

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected int
	}{
		{"less than a tick", 4 * time.Millisecond, 0},
		{"carry over completes a tick", 6 * time.Millisecond, 1},
		{"several ticks", 35 * time.Millisecond, 3},
		{"remainder carried", 5 * time.Millisecond, 1},
		{"negative elapsed ignored", -time.Second, 0},
	}

	for _, tc := range tests {
		if got := clock.Advance(tc.elapsed); got != tc.expected {
			t.Errorf("%s: Advance(%v) = %d, expected %d", tc.name, tc.elapsed, got, tc.expected)
		}
	}
}

func TestFixedStepCapsLongFrames(t *testing.T) {
	clock := NewFixedStep(60)

	ticks := clock.Advance(10 * time.Second)
	limit := int(maxFrameTime / clock.Step())
	if ticks > limit {
		t.Errorf("long frame should be capped to %d ticks, got %d", limit, ticks)
	}
	if ticks == 0 {
		t.Error("long frame should still produce ticks")
	}
}

func TestFixedStepIndependentOfFrameRate(t *testing.T) {
	// One simulated second rendered at 30 fps and at 144 fps must yield the
	// same number of ticks (within one tick of remainder).
	run := func(fps int) int {
		clock := NewFixedStep(60)
		frame := time.Second / time.Duration(fps)
		total := 0
		for i := 0; i < fps; i++ {
			total += clock.Advance(frame)
		}
		return total
	}

	slow, fast := run(30), run(144)
	if slow < 59 || slow > 60 || fast < 59 || fast > 60 {
		t.Errorf("expected ~60 ticks per second, got %d at 30fps and %d at 144fps", slow, fast)
	}
}

func TestFixedStepDefaults(t *testing.T) {
	clock := NewFixedStep(0)
	if clock.Step() != time.Second/60 {
		t.Errorf("default step should be 1/60s, got %v", clock.Step())
	}
	if got := clock.Advance(clock.Step() / 2); got != 0 {
		t.Errorf("half a step should not tick, got %d", got)
	}
	if got := clock.Advance(clock.Step() / 2); got != 1 {
		t.Errorf("two half steps should make one tick, got %d", got)
	}
}
