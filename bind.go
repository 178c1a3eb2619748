package actionport

// Sink is the outbound forwarding function supplied by the caller: it
// receives each constructed action and hands it to whatever transport the
// caller owns. The library never owns a transport itself.
type Sink func(Action)

// Poster is the send-capable collaborator: anything exposing a
// single-argument send method. A channel wrapper, a worker handle, or a
// subprocess pipe all fit.
type Poster interface {
	Post(v any)
}

// PosterFunc is a function adapter for Poster. Use for simple send
// functions that don't need a struct:
//
//	dispatch := increment.BindTo(actionport.PosterFunc(func(v any) {
//	    ch <- v
//	}))
type PosterFunc func(v any)

// Post implements the Poster interface.
func (f PosterFunc) Post(v any) { f(v) }

// Bind returns a dispatcher for c: a function with the transform's argument
// list that constructs the action and forwards it to sink, synchronously,
// in the same call. Exactly one sink call per invocation, in call order.
// If the transform panics, the panic propagates before the sink runs.
func (c Creator[A, P]) Bind(sink Sink) func(A) {
	return func(a A) {
		sink(c.New(a))
	}
}

// BindTo is Bind with the poster's Post method as the sink. The method
// value keeps its receiver, so the returned dispatcher stays valid when
// passed around detached from the poster.
func (c Creator[A, P]) BindTo(p Poster) func(A) {
	return c.Bind(func(a Action) { p.Post(a) })
}

// Bind returns a dispatcher for c. See Creator.Bind.
func (c Creator2[A, B, P]) Bind(sink Sink) func(A, B) {
	return func(a A, b B) {
		sink(c.New(a, b))
	}
}

// BindTo is Bind with the poster's Post method as the sink.
func (c Creator2[A, B, P]) BindTo(p Poster) func(A, B) {
	return c.Bind(func(a Action) { p.Post(a) })
}

// Bind returns a dispatcher for c. See Creator.Bind.
func (c SignalCreator) Bind(sink Sink) func() {
	return func() {
		sink(c.New())
	}
}

// BindTo is Bind with the poster's Post method as the sink.
func (c SignalCreator) BindTo(p Poster) func() {
	return c.Bind(func(a Action) { p.Post(a) })
}
