package correlate

import "slices"

type contextState int

const (
	stateClosed contextState = iota
	stateOpen
)

// Context is the per-correlation-window state machine described in §4.4:
// Closed -> Open -> Closed, driven by message arrivals and timer ticks.
// A Context is owned exclusively by the Correlator's dispatcher goroutine
// and is never touched from more than one goroutine at a time.
type Context struct {
	conditions Conditions
	patterns   []string
	state      contextState

	elapsedMS             uint32
	elapsedSinceLastMsgMS uint32
	messages              []*Message
}

// NewContext returns a fresh, closed Context for the given conditions and
// participating pattern uuids.
func NewContext(conditions Conditions, patterns []string) *Context {
	return &Context{
		conditions: conditions,
		patterns:   append([]string(nil), patterns...),
	}
}

// Opened reports whether the context has transitioned out of its initial
// Closed state.
func (c *Context) Opened() bool {
	return c.state == stateOpen
}

// Messages returns the messages accumulated so far, in arrival order.
func (c *Context) Messages() []*Message {
	return c.messages
}

// ElapsedMS returns the total elapsed time since opening.
func (c *Context) ElapsedMS() uint32 {
	return c.elapsedMS
}

// ElapsedSinceLastMessageMS returns the elapsed time since the last
// accepted message.
func (c *Context) ElapsedSinceLastMessageMS() uint32 {
	return c.elapsedSinceLastMsgMS
}

// OnMessage feeds msg to the context and reports whether it should close
// as a result. If the context is Closed and msg doesn't satisfy the
// opening rule, the context is left untouched and false is returned.
func (c *Context) OnMessage(msg *Message) bool {
	if c.state == stateClosed {
		if !c.isOpening(msg) {
			return false
		}
		c.state = stateOpen
		c.elapsedMS = 0
		c.elapsedSinceLastMsgMS = 0
	}

	c.elapsedSinceLastMsgMS = 0
	c.messages = append(c.messages, msg)
	return c.isClosing()
}

// OnTimer advances the context's elapsed-time counters by tickMS and
// reports whether a timer-based closing condition now fires. A no-op,
// always returning false, on a Closed context.
func (c *Context) OnTimer(tickMS uint32) bool {
	if c.state == stateClosed {
		return false
	}
	c.elapsedMS += tickMS
	c.elapsedSinceLastMsgMS += tickMS
	return c.isTimeoutExpired() || c.isRenewExpired()
}

func (c *Context) isOpening(msg *Message) bool {
	if len(c.patterns) == 0 {
		return false
	}
	if c.conditions.FirstOpens() {
		return msg.uuid == c.patterns[0]
	}
	return slices.Contains(c.patterns, msg.uuid)
}

// isClosing evaluates the closing conditions in the order mandated by
// §4.4, returning true on the first hit: max_size, then the
// terminating-pattern message, then the hard timeout, then renew_timeout.
func (c *Context) isClosing() bool {
	if c.isMaxSizeReached() {
		return true
	}
	if c.isClosingMessage() {
		return true
	}
	if c.isTimeoutExpired() {
		return true
	}
	return c.isRenewExpired()
}

func (c *Context) isMaxSizeReached() bool {
	maxSize, ok := c.conditions.MaxSize()
	return ok && len(c.messages) >= maxSize
}

func (c *Context) isClosingMessage() bool {
	if !c.conditions.LastCloses() || len(c.messages) == 0 || len(c.patterns) == 0 {
		return false
	}
	last := c.messages[len(c.messages)-1]
	return last.uuid == c.patterns[len(c.patterns)-1]
}

func (c *Context) isTimeoutExpired() bool {
	return c.elapsedMS >= c.conditions.Timeout()
}

func (c *Context) isRenewExpired() bool {
	renew, ok := c.conditions.RenewTimeout()
	return ok && c.elapsedSinceLastMsgMS >= renew
}
