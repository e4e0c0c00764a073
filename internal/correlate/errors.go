package correlate

import "errors"

// Sentinel errors surfaced by the core. Wrap with fmt.Errorf("...: %w", ...)
// for context; callers should compare with errors.Is.
var (
	// ErrInvalidConfig is returned by ConditionsBuilder.Build when the
	// requested Conditions are internally inconsistent.
	ErrInvalidConfig = errors.New("correlate: invalid conditions")

	// ErrInvalidPattern is returned by PatternTrie.Insert when a pattern's
	// compiled segment sequence can't be attached to the trie.
	ErrInvalidPattern = errors.New("correlate: invalid pattern")

	// ErrStopped is returned by Correlator.PushMessage/PushTimerEvent once
	// the correlator has been stopped.
	ErrStopped = errors.New("correlate: correlator stopped")

	// ErrAlreadyStopped is returned by a second call to Correlator.Stop.
	ErrAlreadyStopped = errors.New("correlate: correlator already stopped")
)
