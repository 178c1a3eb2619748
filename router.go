package actionport

// consumer invokes a registered handler with an untyped payload and reports
// whether the payload's dynamic type matched the registration.
type consumer func(payload any) bool

// Router dispatches inbound actions to registered handlers by tag.
//
// Usage:
//  1. Create a router with NewRouter
//  2. Register handlers with Handle / HandleSignal
//  3. Feed inbound values to Route
//
// Router is stateless apart from its registry and safe for concurrent use
// after configuration, to the extent the registered handlers are. Do not
// call Handle after the first Route.
type Router struct {
	consumers map[string]consumer
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{consumers: make(map[string]consumer)}
}

// Handle registers fn as the consumer for ref's tag. The payload type is
// checked at compile time: fn's parameter must be ref's declared payload
// type.
//
// This is a package-level function (not a method) due to Go generics
// limitations: methods cannot have type parameters independent of the
// receiver.
//
// Example:
//
//	actionport.Handle(r, increment, func(n int) {
//	    counter += n
//	})
func Handle[P any](r *Router, ref Ref[P], fn func(P)) {
	r.consumers[ref.Tag()] = func(payload any) bool {
		p, ok := payload.(P)
		if !ok {
			return false
		}
		fn(p)
		return true
	}
}

// HandleSignal registers fn as the consumer for a payload-free tag. The
// inbound payload is ignored.
func HandleSignal(r *Router, sig SignalCreator, fn func()) {
	r.consumers[sig.Tag()] = func(any) bool {
		fn()
		return true
	}
}

// Route dispatches candidate to its registered consumer and reports whether
// a match occurred.
//
// Nil candidates, values that are not actions, actions without a tag,
// unknown tags, and payloads whose dynamic type does not match the
// registration all return false without invoking anything. Foreign traffic
// on a shared channel is a normal case, not an error.
//
// On a match the consumer runs exactly once, synchronously; if it panics,
// the panic propagates out of Route. Subsequent Route calls are unaffected.
func (r *Router) Route(candidate any) bool {
	a, ok := asAction(candidate)
	if !ok {
		return false
	}
	c, found := r.consumers[a.Tag]
	if !found {
		return false
	}
	return c(a.Payload)
}
