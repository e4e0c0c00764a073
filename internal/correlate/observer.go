package correlate

// Observer is notified when an incoming message could not be matched to
// any inserted pattern, immediately before it's dropped (§7: unmatched
// messages are dropped silently "after a diagnostic notification to an
// observability hook"). Wiring this to a real logging host is outside
// the core's scope; the default Observer is a no-op, matching the
// reference implementation's behavior of only ever printing to stdout
// (original_source/src/context.rs has no structured observability at
// all).
type Observer func(raw *Message)

func noopObserver(*Message) {}
