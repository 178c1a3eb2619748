package actionport

// EventRouter dispatches message-receipt envelopes to registered handlers.
//
// Unlike Router, it consumes Events (the candidate action nested under
// Data, the shape raw transport callbacks deliver), returns nothing, and
// supports a universal fallback for traffic it does not recognize. Wire
// its Route method into the transport's receive hook; it terminates the
// inbound chain rather than reporting upward.
type EventRouter struct {
	consumers map[string]consumer
	fallback  func(Event)
}

// EventOption configures an EventRouter.
type EventOption func(*EventRouter)

// WithDefault installs a fallback consumer invoked with the entire inbound
// event whenever no tag-specific consumer matches. Without it, unmatched
// events are dropped.
func WithDefault(fn func(Event)) EventOption {
	return func(r *EventRouter) {
		r.fallback = fn
	}
}

// NewEventRouter creates an event router with the given options.
func NewEventRouter(opts ...EventOption) *EventRouter {
	r := &EventRouter{consumers: make(map[string]consumer)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleEvent registers fn as the consumer for ref's tag. See Handle.
func HandleEvent[P any](r *EventRouter, ref Ref[P], fn func(P)) {
	r.consumers[ref.Tag()] = func(payload any) bool {
		p, ok := payload.(P)
		if !ok {
			return false
		}
		fn(p)
		return true
	}
}

// HandleEventSignal registers fn as the consumer for a payload-free tag.
func HandleEventSignal(r *EventRouter, sig SignalCreator, fn func()) {
	r.consumers[sig.Tag()] = func(any) bool {
		fn()
		return true
	}
}

// Route dispatches ev. If ev.Data is an action with a registered consumer
// and a payload of the registered type, that consumer runs once with the
// payload. Anything else — foreign data, unknown tags, mismatched
// payloads — goes to the default consumer when one is installed and is
// otherwise dropped. Route never treats malformed input as an error.
func (r *EventRouter) Route(ev Event) {
	if a, ok := asAction(ev.Data); ok {
		if c, found := r.consumers[a.Tag]; found {
			if c(a.Payload) {
				return
			}
		}
	}
	if r.fallback != nil {
		r.fallback(ev)
	}
}
