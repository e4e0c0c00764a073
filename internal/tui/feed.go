// Package tui implements an optional, live-updating terminal dashboard
// for a running correlate.Correlator: a sparkline of contexts closing
// over time plus a mouse-addressable, filterable list of recently
// emitted action messages. It plays no part in the core engine — wiring
// it in is purely a matter of handing a Feed's two sink methods to
// correlate.WithSink / correlate.WithStatsSink.
package tui

import (
	"time"

	"github.com/kesh-dev/correlate/internal/correlate"
)

// actionEvent pairs an emitted message with the moment it was observed,
// since Message itself carries no timestamp.
type actionEvent struct {
	Message *correlate.Message
	At      time.Time
}

// Feed bridges a Correlator's dispatcher-goroutine-confined callbacks to
// a bubbletea program running on its own goroutine — the same
// decoupling the reference dashboard uses between its poller and
// tea.Program, so neither side ever blocks on the other.
type Feed struct {
	actions chan actionEvent
	stats   chan correlate.Stats
}

// NewFeed returns a Feed ready to be wired into a Correlator's options
// and then passed to Run.
func NewFeed() *Feed {
	return &Feed{
		actions: make(chan actionEvent, 64),
		stats:   make(chan correlate.Stats, 8),
	}
}

// ActionSink is suitable for correlate.WithSink. It never blocks: under
// backpressure (the dashboard isn't keeping up, or isn't running) events
// are dropped rather than stalling the dispatcher.
func (f *Feed) ActionSink(msg *correlate.Message) {
	select {
	case f.actions <- actionEvent{Message: msg, At: time.Now()}:
	default:
	}
}

// StatsSink is suitable for correlate.WithStatsSink.
func (f *Feed) StatsSink(s correlate.Stats) {
	select {
	case f.stats <- s:
	default:
	}
}
