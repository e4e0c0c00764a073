package correlate

import "testing"

func TestMessageBuilder_PanicsOnEmptyUUID(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty uuid")
		}
	}()
	NewMessageBuilder("")
}

func TestMessageBuilder_NameOptional(t *testing.T) {
	msg := NewMessageBuilder("u1").Build()
	if _, ok := msg.Name(); ok {
		t.Fatalf("expected no name set")
	}

	named := NewMessageBuilder("u1").Name("evt").Build()
	name, ok := named.Name()
	if !ok || name != "evt" {
		t.Fatalf("Name() = %q, %v, want evt, true", name, ok)
	}
}

func TestMessageBuilder_PairOverwritesOnDuplicateKey(t *testing.T) {
	msg := NewMessageBuilder("u1").Pair("k", "first").Pair("k", "second").Build()
	v, ok := msg.Get("k")
	if !ok || v != "second" {
		t.Fatalf("Get(k) = %q, %v, want second, true", v, ok)
	}
}

func TestMessage_GetMissingKey(t *testing.T) {
	msg := NewMessageBuilder("u1").Build()
	if _, ok := msg.Get("missing"); ok {
		t.Fatalf("expected missing key to report ok=false")
	}
}

func TestMessage_ValuesIsDefensiveCopy(t *testing.T) {
	msg := NewMessageBuilder("u1").Pair("k", "v").Build()
	values := msg.Values()
	values["k"] = "mutated"

	v, _ := msg.Get("k")
	if v != "v" {
		t.Fatalf("underlying message value changed to %q via returned copy", v)
	}
}

func TestMessage_SortedKeysIsDeterministic(t *testing.T) {
	msg := NewMessageBuilder("u1").Pair("zeta", "1").Pair("alpha", "2").Pair("mid", "3").Build()
	want := []string{"alpha", "mid", "zeta"}
	got := msg.sortedKeys()
	if len(got) != len(want) {
		t.Fatalf("sortedKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sortedKeys() = %v, want %v", got, want)
		}
	}
}

func TestMessage_UUIDRoundTrip(t *testing.T) {
	msg := NewMessageBuilder("abc-123").Build()
	if msg.UUID() != "abc-123" {
		t.Fatalf("UUID() = %q, want abc-123", msg.UUID())
	}
}
