package correlate

import "testing"

func mustConditions(t *testing.T, b *ConditionsBuilder) Conditions {
	t.Helper()
	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return c
}

func rawMessage(t *testing.T, uuid string) *Message {
	t.Helper()
	return NewMessageBuilder(uuid).Build()
}

// Scenario 1: timeout only.
func TestContext_TimeoutOnly(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100))
	ctx := NewContext(conditions, nil)

	// on_timer never opens a closed context.
	want := []bool{false, false, false}
	got := []bool{ctx.OnTimer(50), ctx.OnTimer(49), ctx.OnTimer(1)}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OnTimer step %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// Scenario 1 as originally specified, except the context must first be
// opened by a message before timers can close it (on a Closed context,
// OnTimer is defined as a no-op — see §4.4). This reproduces the
// concrete timing assertions from §8 against an already-open context.
func TestContext_TimeoutOnly_Open(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).Patterns("1").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())

	if ctx.OnMessage(rawMessage(t, "1")) {
		t.Fatalf("opening message unexpectedly closed the context")
	}

	steps := []struct {
		tick uint32
		want bool
	}{
		{50, false},
		{49, false},
		{1, true},
	}
	for i, s := range steps {
		if got := ctx.OnTimer(s.tick); got != s.want {
			t.Errorf("step %d: OnTimer(%d) = %v, want %v", i, s.tick, got, s.want)
		}
	}
}

// Scenario 2: max size.
func TestContext_MaxSize(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).MaxSize(3).Patterns("1").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())

	msg := rawMessage(t, "1")
	want := []bool{false, false, true}
	for i, w := range want {
		if got := ctx.OnMessage(msg); got != w {
			t.Errorf("message %d: got %v, want %v", i, got, w)
		}
	}
}

// Scenario 3: renew timeout without renewal.
func TestContext_RenewTimeout_NoRenewal(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).RenewTimeout(10).Patterns("1").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())

	if ctx.OnMessage(rawMessage(t, "1")) {
		t.Fatalf("opening message unexpectedly closed the context")
	}
	steps := []struct {
		tick uint32
		want bool
	}{
		{8, false},
		{1, false},
		{1, true},
	}
	for i, s := range steps {
		if got := ctx.OnTimer(s.tick); got != s.want {
			t.Errorf("step %d: OnTimer(%d) = %v, want %v", i, s.tick, got, s.want)
		}
	}
}

// Scenario 4: renew timeout, with renewal resetting the idle counter.
func TestContext_RenewTimeout_WithRenewal(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).RenewTimeout(10).Patterns("1").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())
	msg := rawMessage(t, "1")

	if ctx.OnMessage(msg) {
		t.Fatalf("opening message unexpectedly closed the context")
	}
	if ctx.OnTimer(8) {
		t.Fatalf("unexpected close after 8ms")
	}
	if ctx.OnTimer(1) {
		t.Fatalf("unexpected close after 9ms total")
	}
	if ctx.OnMessage(msg) {
		t.Fatalf("renewing message unexpectedly closed the context")
	}
	if ctx.OnTimer(1) {
		t.Fatalf("unexpected close after renewal reset the idle counter")
	}
}

func TestContext_FirstOpensRestrictsOpening(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).Patterns("open", "other").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())

	if ctx.OnMessage(rawMessage(t, "other")) {
		t.Fatalf("non-opening pattern unexpectedly closed the context")
	}
	if ctx.Opened() {
		t.Fatalf("context opened on a pattern excluded by first_opens")
	}

	if ctx.OnMessage(rawMessage(t, "open")) {
		t.Fatalf("opening message unexpectedly closed on arrival")
	}
	if !ctx.Opened() {
		t.Fatalf("context did not open on its designated opening pattern")
	}
}

func TestContext_AnyListedPatternOpensWithoutFirstOpens(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(100).Patterns("a", "b"))
	ctx := NewContext(conditions, conditions.Patterns())

	if ctx.OnMessage(rawMessage(t, "b")) {
		t.Fatalf("unexpected close on opening")
	}
	if !ctx.Opened() {
		t.Fatalf("context should open on any listed pattern absent first_opens")
	}
}

func TestContext_LastClosesForcesClose(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(1000).Patterns("start", "end").LastCloses(true))
	ctx := NewContext(conditions, conditions.Patterns())

	if ctx.OnMessage(rawMessage(t, "start")) {
		t.Fatalf("opening message unexpectedly closed the context")
	}
	if !ctx.OnMessage(rawMessage(t, "end")) {
		t.Fatalf("terminating-pattern message did not close the context")
	}
}

func TestContext_ClosedOnTimerIsNoOp(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(10))
	ctx := NewContext(conditions, nil)
	if ctx.OnTimer(1000) {
		t.Fatalf("OnTimer on a never-opened context must never report close")
	}
}

func TestContext_MessageCountNeverExceedsMaxSize(t *testing.T) {
	conditions := mustConditions(t, NewConditionsBuilder(1000).MaxSize(2).Patterns("1").FirstOpens(true))
	ctx := NewContext(conditions, conditions.Patterns())
	msg := rawMessage(t, "1")

	ctx.OnMessage(msg)
	closed := ctx.OnMessage(msg)
	if !closed {
		t.Fatalf("expected close at max_size")
	}
	if len(ctx.Messages()) != 2 {
		t.Fatalf("messages = %d, want 2", len(ctx.Messages()))
	}
}
