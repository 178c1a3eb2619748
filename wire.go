package actionport

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// LooksLikeAction reports whether raw is valid JSON carrying a string tag
// at the root, i.e. the wire shape {"tag": ..., "payload": ...}. It is a
// cheap shape check, not a full parse; use it to filter a channel shared
// with foreign traffic before handing bytes to a WireRouter.
func LooksLikeAction(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	return gjson.GetBytes(raw, "tag").Type == gjson.String
}

// LooksLikeEnvelope reports whether raw is valid JSON carrying a string
// tag under data, i.e. the wire shape {"data": {"tag": ...}}.
func LooksLikeEnvelope(raw []byte) bool {
	if !gjson.ValidBytes(raw) {
		return false
	}
	return gjson.GetBytes(raw, "data.tag").Type == gjson.String
}

// WireAction is an action decoded from wire bytes with its payload left
// raw, to be unmarshaled by whichever consumer claims the tag.
type WireAction struct {
	Tag     string
	Payload json.RawMessage
}

// DecodeAction extracts the tag and raw payload from root-shaped wire
// bytes. Invalid JSON and missing or non-string tags report false.
func DecodeAction(raw []byte) (WireAction, bool) {
	return decodeAt(raw, "")
}

// decodeAt decodes the action found at prefix ("" for the root).
func decodeAt(raw []byte, prefix string) (WireAction, bool) {
	if !gjson.ValidBytes(raw) {
		return WireAction{}, false
	}
	tagPath, payloadPath := "tag", "payload"
	if prefix != "" {
		tagPath = prefix + "." + tagPath
		payloadPath = prefix + "." + payloadPath
	}
	tag := gjson.GetBytes(raw, tagPath)
	if tag.Type != gjson.String || tag.String() == "" {
		return WireAction{}, false
	}
	wa := WireAction{Tag: tag.String()}
	if p := gjson.GetBytes(raw, payloadPath); p.Exists() {
		wa.Payload = json.RawMessage(p.Raw)
	}
	return wa, true
}

// JSONSink adapts a byte-oriented send function into a Sink by encoding
// each action to its wire shape. Bound dispatchers built on it drive byte
// transports (sockets, pipes, subprocess stdio) unchanged.
//
// A payload that cannot be marshaled is a schema-definition defect: the
// sink panics before anything reaches the transport, from within the
// dispatcher call that produced it.
func JSONSink(post func([]byte)) Sink {
	return func(a Action) {
		raw, err := json.Marshal(a)
		if err != nil {
			panic(fmt.Errorf("actionport: encode %s: %w", a.Tag, err))
		}
		post(raw)
	}
}

// wireConsumer unmarshals a raw payload and invokes a registered handler.
type wireConsumer func(payload json.RawMessage) error

// WireRouter dispatches wire bytes to registered handlers by tag,
// unmarshaling each payload into the handler's declared type.
//
// By default it reads root-shaped actions; WithWireEnvelope switches it to
// the {"data": {...}} shape. Hooks observe dispatches, unmatched bytes,
// and decode or handler failures (see WithOnDispatch and friends).
//
// WireRouter is safe for concurrent use after configuration. Do not call
// HandleWire after the first Route.
type WireRouter struct {
	consumers map[string]wireConsumer
	envelope  bool
	hooks     wireHooks
}

// WireOption configures a WireRouter.
type WireOption func(*WireRouter)

// WithWireEnvelope makes the router read the action from the data field
// instead of the root. Root-shaped actions then no longer match.
func WithWireEnvelope() WireOption {
	return func(r *WireRouter) {
		r.envelope = true
	}
}

// NewWireRouter creates a wire router with the given options.
func NewWireRouter(opts ...WireOption) *WireRouter {
	r := &WireRouter{consumers: make(map[string]wireConsumer)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// HandleWire registers fn as the consumer for ref's tag. The raw payload
// is unmarshaled into P before fn runs; an absent payload yields the zero
// value. See Handle for why this is a package-level function.
func HandleWire[P any](r *WireRouter, ref Ref[P], fn func(P) error) {
	r.consumers[ref.Tag()] = func(payload json.RawMessage) error {
		var p P
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &p); err != nil {
				return &decodeError{err: err}
			}
		}
		return fn(p)
	}
}

// HandleWireSignal registers fn as the consumer for a payload-free tag.
func HandleWireSignal(r *WireRouter, sig SignalCreator, fn func() error) {
	r.consumers[sig.Tag()] = func(json.RawMessage) error {
		return fn()
	}
}

// Route dispatches raw and reports whether a consumer ran.
//
// Bytes that are not wire actions, unknown tags, and payloads that fail to
// unmarshal into the registered type report false; the onUnmatched and
// onDecodeError hooks observe them. A consumer that runs counts as a match
// even when it returns an error — the error goes to the onHandlerError
// hooks, and Route still returns true.
func (r *WireRouter) Route(raw []byte) bool {
	var wa WireAction
	var ok bool
	if r.envelope {
		wa, ok = decodeAt(raw, "data")
	} else {
		wa, ok = DecodeAction(raw)
	}
	if !ok {
		r.hooks.unmatched(raw)
		return false
	}

	c, found := r.consumers[wa.Tag]
	if !found {
		r.hooks.unmatched(raw)
		return false
	}

	r.hooks.dispatch(wa.Tag)

	err := c(wa.Payload)
	var derr *decodeError
	if errors.As(err, &derr) {
		r.hooks.decodeError(wa.Tag, derr.err)
		return false
	}
	if err != nil {
		r.hooks.handlerError(wa.Tag, err)
	}
	return true
}

// decodeError wraps payload unmarshal errors so Route can tell them apart
// from handler errors.
type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }
