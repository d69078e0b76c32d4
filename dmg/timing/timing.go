// Package timing paces emulation against the wall clock.
package timing

import "time"

const (
	// CyclesPerFrame is the length of one LCD frame in machine cycles.
	CyclesPerFrame = 154 * 114
	// CyclesPerSecond is the machine cycle rate of the DMG.
	CyclesPerSecond = 1 << 20
)

// TargetFPS is the frame rate of the real hardware, about 59.73Hz.
func TargetFPS() float64 {
	return float64(CyclesPerSecond) / float64(CyclesPerFrame)
}

// FrameDuration returns the wall clock time of a single frame.
func FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / TargetFPS())
}

// Limiter delivers one tick per frame.
type Limiter struct {
	ticker *time.Ticker
}

// NewLimiter starts a limiter running at the hardware frame rate.
func NewLimiter() *Limiter {
	return NewLimiterWithPeriod(FrameDuration())
}

// NewLimiterWithPeriod starts a limiter with a custom frame period.
func NewLimiterWithPeriod(period time.Duration) *Limiter {
	return &Limiter{ticker: time.NewTicker(period)}
}

// C is the channel the frame ticks are delivered on.
func (l *Limiter) C() <-chan time.Time {
	return l.ticker.C
}

func (l *Limiter) Stop() {
	l.ticker.Stop()
}
