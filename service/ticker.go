package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-mazegen/service/i"
)

const (
	maxSpeed      = 10
	speedStepTime = 20 * time.Millisecond
)

var ErrInvalidSpeed = errors.New("speed must be between 0 and 10")

var (
	_ i.Ticker = &IntervalTicker{}
	_ i.Ticker = &ImmediateTicker{}
)

// DelayForSpeed maps a speed between 1 (slowest, 200ms) and 10 (fastest,
// 20ms) to the pause between steps. Speed 0 disables pacing.
func DelayForSpeed(speed int) (time.Duration, error) {
	if speed < 0 || speed > maxSpeed {
		return 0, ErrInvalidSpeed
	}
	if speed == 0 {
		return 0, nil
	}
	return time.Duration(maxSpeed+1-speed) * speedStepTime, nil
}

// NewTicker returns an IntervalTicker for positive delays and an
// ImmediateTicker otherwise.
func NewTicker(delay time.Duration) i.Ticker {
	if delay <= 0 {
		return NewImmediateTicker()
	}
	return NewIntervalTicker(delay)
}

// IntervalTicker fires once per interval.
type IntervalTicker struct {
	ticker *time.Ticker
}

// NewIntervalTicker creates a ticker firing every d. d must be positive.
func NewIntervalTicker(d time.Duration) *IntervalTicker {
	return &IntervalTicker{ticker: time.NewTicker(d)}
}

// Tick implements i.Ticker.
func (t *IntervalTicker) Tick() <-chan time.Time {
	return t.ticker.C
}

// Stop implements i.Ticker.
func (t *IntervalTicker) Stop() {
	t.ticker.Stop()
}

// ImmediateTicker is always ready.
type ImmediateTicker struct {
	c chan time.Time
}

// NewImmediateTicker creates a ticker that never waits.
func NewImmediateTicker() *ImmediateTicker {
	c := make(chan time.Time)
	close(c) // a closed channel is always ready to receive
	return &ImmediateTicker{c: c}
}

// Tick implements i.Ticker.
func (t *ImmediateTicker) Tick() <-chan time.Time {
	return t.c
}

// Stop implements i.Ticker.
func (t *ImmediateTicker) Stop() {}
