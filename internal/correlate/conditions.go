package correlate

import (
	"encoding/json"
	"fmt"
)

// Conditions is the immutable closing-rule bundle attached to a
// ContextTemplate. Build one through ConditionsBuilder.
type Conditions struct {
	timeout      uint32
	renewTimeout *uint32
	maxSize      *int
	firstOpens   *bool
	lastCloses   *bool
	patterns     []string
}

// Timeout returns the hard wall-clock deadline in milliseconds.
func (c Conditions) Timeout() uint32 { return c.timeout }

// RenewTimeout returns the idle deadline, if configured.
func (c Conditions) RenewTimeout() (uint32, bool) {
	if c.renewTimeout == nil {
		return 0, false
	}
	return *c.renewTimeout, true
}

// MaxSize returns the message-count ceiling, if configured.
func (c Conditions) MaxSize() (int, bool) {
	if c.maxSize == nil {
		return 0, false
	}
	return *c.maxSize, true
}

// FirstOpens reports whether only patterns[0] may open a context.
func (c Conditions) FirstOpens() bool {
	return c.firstOpens != nil && *c.firstOpens
}

// LastCloses reports whether a message matching the last pattern forces close.
func (c Conditions) LastCloses() bool {
	return c.lastCloses != nil && *c.lastCloses
}

// Patterns returns the ordered list of participating pattern uuids.
func (c Conditions) Patterns() []string {
	out := make([]string, len(c.patterns))
	copy(out, c.patterns)
	return out
}

// ConditionsBuilder is the fluent builder for Conditions.
type ConditionsBuilder struct {
	c Conditions
}

// NewConditionsBuilder starts a builder with the mandatory hard timeout
// (milliseconds).
func NewConditionsBuilder(timeoutMS uint32) *ConditionsBuilder {
	return &ConditionsBuilder{c: Conditions{timeout: timeoutMS}}
}

// RenewTimeout sets the idle deadline, reset by each message arrival.
func (b *ConditionsBuilder) RenewTimeout(ms uint32) *ConditionsBuilder {
	b.c.renewTimeout = &ms
	return b
}

// MaxSize sets the message-count ceiling.
func (b *ConditionsBuilder) MaxSize(n int) *ConditionsBuilder {
	b.c.maxSize = &n
	return b
}

// FirstOpens restricts opening to patterns[0] when v is true.
func (b *ConditionsBuilder) FirstOpens(v bool) *ConditionsBuilder {
	b.c.firstOpens = &v
	return b
}

// LastCloses forces a close on a message matching the last pattern when v is true.
func (b *ConditionsBuilder) LastCloses(v bool) *ConditionsBuilder {
	b.c.lastCloses = &v
	return b
}

// Patterns sets the ordered participating pattern uuids.
func (b *ConditionsBuilder) Patterns(uuids ...string) *ConditionsBuilder {
	b.c.patterns = append([]string(nil), uuids...)
	return b
}

// Build validates and returns the immutable Conditions. It fails with
// ErrInvalidConfig only when timeout == 0 or renew_timeout >= timeout — a
// renew window no stronger than the hard timeout is meaningless.
func (b *ConditionsBuilder) Build() (Conditions, error) {
	if b.c.timeout == 0 {
		return Conditions{}, fmt.Errorf("%w: timeout must be greater than zero", ErrInvalidConfig)
	}
	if b.c.renewTimeout != nil && *b.c.renewTimeout >= b.c.timeout {
		return Conditions{}, fmt.Errorf("%w: renew_timeout (%d) must be less than timeout (%d)",
			ErrInvalidConfig, *b.c.renewTimeout, b.c.timeout)
	}
	return b.c, nil
}

// conditionsWire is the JSON-decoded shape of Conditions, matching the
// field names enumerated in the specification's data model.
type conditionsWire struct {
	Timeout      uint32   `json:"timeout"`
	RenewTimeout *uint32  `json:"renew_timeout,omitempty"`
	MaxSize      *int     `json:"max_size,omitempty"`
	FirstOpens   *bool    `json:"first_opens,omitempty"`
	LastCloses   *bool    `json:"last_closes,omitempty"`
	Patterns     []string `json:"patterns,omitempty"`
}

// MarshalJSON implements the external config form for Conditions.
func (c Conditions) MarshalJSON() ([]byte, error) {
	return json.Marshal(conditionsWire{
		Timeout:      c.timeout,
		RenewTimeout: c.renewTimeout,
		MaxSize:      c.maxSize,
		FirstOpens:   c.firstOpens,
		LastCloses:   c.lastCloses,
		Patterns:     c.patterns,
	})
}

// UnmarshalJSON decodes the external config form, re-validating it through
// the same rules as the builder so a round trip can never produce an
// inconsistent Conditions value.
func (c *Conditions) UnmarshalJSON(data []byte) error {
	var w conditionsWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	b := NewConditionsBuilder(w.Timeout)
	if w.RenewTimeout != nil {
		b.RenewTimeout(*w.RenewTimeout)
	}
	if w.MaxSize != nil {
		b.MaxSize(*w.MaxSize)
	}
	if w.FirstOpens != nil {
		b.FirstOpens(*w.FirstOpens)
	}
	if w.LastCloses != nil {
		b.LastCloses(*w.LastCloses)
	}
	if w.Patterns != nil {
		b.Patterns(w.Patterns...)
	}
	built, err := b.Build()
	if err != nil {
		return err
	}
	*c = built
	return nil
}
