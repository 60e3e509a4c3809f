package i

import "time"

// Ticker paces generation; one step runs per value received from Tick.
type Ticker interface {
	Tick() <-chan time.Time
	Stop()
}
