// Package correlate implements the core of a log-event correlation
// engine: a pattern trie that identifies the message behind a raw log
// line, a per-window Context state machine driven by message arrivals
// and timer ticks, and a Correlator dispatch loop that ties the two
// together and emits synthesized Actions when a context closes.
package correlate
