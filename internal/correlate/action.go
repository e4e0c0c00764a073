package correlate

import (
	"encoding/json"
	"fmt"
)

// Action transforms a closed Context's accumulated messages into zero or
// more synthesized output messages. MessageAction is the only variant
// the core defines; additional kinds are an extension point (§4.5).
type Action interface {
	Apply(ctx *Context) []*Message
}

// MessageAction builds one synthesized Message from a closed context's
// accumulated state: a fresh random uuid, the name of the first
// accumulated message, and the union of all accumulated messages' values
// (later messages shadow earlier ones on colliding keys).
type MessageAction struct{}

func NewMessageAction() *MessageAction {
	return &MessageAction{}
}

func (MessageAction) Apply(ctx *Context) []*Message {
	messages := ctx.Messages()
	if len(messages) == 0 {
		return nil
	}

	b := NewMessageBuilder(newRandomUUID())
	if name, ok := messages[0].Name(); ok {
		b.Name(name)
	}
	for _, m := range messages {
		for _, k := range m.sortedKeys() {
			v, _ := m.Get(k)
			b.Pair(k, v)
		}
	}
	return []*Message{b.Build()}
}

// ActionKind tags the closed set of action variants the core knows how
// to build from an ActionSpec.
type ActionKind string

// ActionKindMessage is the only variant the core defines (§6). New
// variants are introduced as new object keys in the wire form, never by
// repurposing this one, to preserve forward-compatible decoding.
const ActionKindMessage ActionKind = "message"

// ActionSpec is the decoded, tagged-union form of one configured action,
// matching the `{"message": null}` wire shape from §6.
type ActionSpec struct {
	Kind ActionKind
}

// NewMessageActionSpec returns the ActionSpec for the core's Message action.
func NewMessageActionSpec() ActionSpec {
	return ActionSpec{Kind: ActionKindMessage}
}

// Action returns the Action implementation this spec names.
func (a ActionSpec) Action() (Action, error) {
	switch a.Kind {
	case ActionKindMessage:
		return NewMessageAction(), nil
	default:
		return nil, fmt.Errorf("correlate: unknown action kind %q", a.Kind)
	}
}

func (a ActionSpec) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case ActionKindMessage:
		return []byte(`{"message":null}`), nil
	default:
		return nil, fmt.Errorf("correlate: cannot marshal action kind %q", a.Kind)
	}
}

func (a *ActionSpec) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := raw["message"]; ok {
		a.Kind = ActionKindMessage
		return nil
	}
	return fmt.Errorf("correlate: unrecognized action spec: %s", data)
}
