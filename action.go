package actionport

// Action is the wire-level unit exchanged over a message channel: a tag
// identifying the message kind and an opaque payload.
//
// Actions are plain values. They are constructed by creators (see Define)
// and consumed by routers; nothing in between inspects the payload.
type Action struct {
	Tag     string `json:"tag"`
	Payload any    `json:"payload,omitempty"`
}

// Event is the envelope delivered by raw message-receipt callbacks: the
// candidate action sits one level down, under Data. Channels shared with
// foreign traffic deliver Events whose Data is not an Action at all; the
// EventRouter treats those as a normal no-match case.
type Event struct {
	Data any `json:"data"`
}

// asAction extracts an Action from an arbitrary inbound value. Values that
// are not actions, and actions without a tag, report false.
func asAction(v any) (Action, bool) {
	switch a := v.(type) {
	case Action:
		if a.Tag == "" {
			return Action{}, false
		}
		return a, true
	case *Action:
		if a == nil || a.Tag == "" {
			return Action{}, false
		}
		return *a, true
	}
	return Action{}, false
}
