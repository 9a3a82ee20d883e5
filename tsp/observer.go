package tsp

import "time"

// Event describes one Optimize call for metrics sinks.
type Event struct {
	N         int
	Strategy  string
	Fallback  bool
	Reason    string // why the exact strategy was abandoned, if it was
	Proven    bool
	Capped    bool
	Cancelled bool
	Elapsed   time.Duration
}

// Observer receives an Event after every successful Optimize call.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOptimize(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// ObserveOptimize calls f(ev).
func (f ObserverFunc) ObserveOptimize(ev Event) { f(ev) }
