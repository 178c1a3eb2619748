// Package actionport provides a statically-checked action protocol for two
// execution contexts that can only talk through an untyped message channel.
//
// A host and a worker goroutine, two processes joined by a pipe, or two
// sides of a socket exchange tagged messages ("actions"). The channel
// itself is untyped — it moves any values or raw bytes — but the protocol
// on top of it should not be: the payload a sender constructs for a tag
// must be the payload the receiver's handler consumes, and the compiler
// should enforce that, not a runtime check.
//
// # Quick Start
//
// Declare a schema once, shared by both ends:
//
//	var (
//	    commands  = actionport.NewSchema()
//	    increment = actionport.Define(commands, "increment", func(n int) int { return n })
//	    rename    = actionport.Define(commands, "rename", func(name string) string { return name })
//	    reset     = actionport.Signal(commands, "reset")
//	)
//
// The sending side binds creators to its transport:
//
//	send := increment.Bind(func(a actionport.Action) { ch <- a })
//	send(5) // ch receives Action{Tag: "increment", Payload: 5}
//
// The receiving side registers handlers against the same creators and
// wires the router into its receive loop:
//
//	r := actionport.NewRouter()
//	actionport.Handle(r, increment, func(n int) { counter += n })
//	actionport.HandleSignal(r, reset, func() { counter = 0 })
//
//	for v := range ch {
//	    r.Route(v)
//	}
//
// Handler and sender shapes are pinned to the schema declaration: binding
// increment yields a func(int), and registering a func(string) against it
// does not compile.
//
// # Design Philosophy
//
// The package is four stateless wrapping layers over a tag-keyed schema:
//
//   - Schema: declares each tag once with its payload transform
//   - Creators: construct Action values from typed arguments
//   - Bind/BindTo: turn creators into side-effecting senders over a caller-supplied sink
//   - Routers: turn handler registrations into a single inbound dispatch function
//
// It never owns a transport. Outbound, it calls the sink you supply;
// inbound, you call the router from your own receive mechanism. Suspension,
// retries, ordering across channels, and backpressure belong to the
// transport, not here.
//
// # Routers
//
// Router consumes bare inbound values and reports match/no-match:
//
//	matched := r.Route(v)
//
// Malformed or foreign values are a normal case — a shared channel
// routinely carries traffic that is not yours — so Route returns false
// rather than failing.
//
// EventRouter consumes receipt envelopes (the action nested under Data,
// as transport callbacks deliver it), returns nothing, and supports a
// universal fallback that receives the whole event:
//
//	er := actionport.NewEventRouter(actionport.WithDefault(func(ev actionport.Event) {
//	    log.Printf("unhandled: %#v", ev.Data)
//	}))
//	actionport.HandleEvent(er, increment, func(n int) { ... })
//
// The asymmetry is deliberate: the bare router reports upward to a caller
// that owns the channel, while the event router terminates a raw transport
// callback that may see unrelated traffic.
//
// # Byte Transports
//
// Transports that carry bytes use the JSON wire shape {"tag": ...,
// "payload": ...}. JSONSink encodes outbound actions:
//
//	send := increment.Bind(actionport.JSONSink(func(b []byte) { conn.Write(b) }))
//
// WireRouter decodes and routes inbound bytes, unmarshaling each payload
// into the handler's declared type:
//
//	wr := actionport.NewWireRouter()
//	actionport.HandleWire(wr, increment, func(n int) error { ... })
//	wr.Route(raw)
//
// LooksLikeAction and LooksLikeEnvelope are cheap shape checks for
// filtering shared channels before routing.
//
// # Hooks
//
// WireRouter observability is hook-based, so the package stays decoupled
// from any logging or metrics system:
//
//	wr := actionport.NewWireRouter(
//	    actionport.WithOnDispatch(func(tag string) { ... }),
//	    actionport.WithOnUnmatched(func(raw []byte) { ... }),
//	    actionport.WithOnDecodeError(func(tag string, err error) { ... }),
//	    actionport.WithOnHandlerError(func(tag string, err error) { ... }),
//	)
//
// Multiple hooks of the same kind are called in order.
//
// # Error Handling
//
// Schema defects (duplicate tags, nil transforms) panic at definition
// time, before any message flows. A payload transform that panics does so
// in the dispatcher's caller, before the sink is invoked. Unrecognized
// inbound traffic is never an error; it is reported through boolean
// returns, the event fallback, or hooks. A handler that panics or errors
// aborts only that route call and leaves the router untouched.
//
// # Thread Safety
//
// Every produced function is reentrant; the package adds no locks, queues,
// or shared mutable state of its own. Routers and bound dispatchers are
// safe for concurrent use after configuration exactly to the extent the
// sinks and handlers behind them are. Do not register tags or handlers
// after wiring up.
package actionport
