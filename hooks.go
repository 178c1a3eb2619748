package actionport

// OnDispatchFunc is called just before a matched consumer executes.
type OnDispatchFunc func(tag string)

// OnUnmatchedFunc is called with the raw bytes when no consumer matches:
// bytes that are not wire actions, or actions with an unregistered tag.
type OnUnmatchedFunc func(raw []byte)

// OnDecodeErrorFunc is called when a matched payload fails to unmarshal
// into the registered type.
type OnDecodeErrorFunc func(tag string, err error)

// OnHandlerErrorFunc is called when a consumer returns an error.
type OnHandlerErrorFunc func(tag string, err error)

// wireHooks holds all configured hook functions.
type wireHooks struct {
	onDispatch     []OnDispatchFunc
	onUnmatched    []OnUnmatchedFunc
	onDecodeError  []OnDecodeErrorFunc
	onHandlerError []OnHandlerErrorFunc
}

func (h wireHooks) dispatch(tag string) {
	for _, fn := range h.onDispatch {
		fn(tag)
	}
}

func (h wireHooks) unmatched(raw []byte) {
	for _, fn := range h.onUnmatched {
		fn(raw)
	}
}

func (h wireHooks) decodeError(tag string, err error) {
	for _, fn := range h.onDecodeError {
		fn(tag, err)
	}
}

func (h wireHooks) handlerError(tag string, err error) {
	for _, fn := range h.onHandlerError {
		fn(tag, err)
	}
}

// WithOnDispatch adds a hook called just before a matched consumer runs.
// Multiple hooks are called in order.
//
// Example:
//
//	actionport.WithOnDispatch(func(tag string) {
//	    logger.Debug("dispatching", "tag", tag)
//	})
func WithOnDispatch(fn OnDispatchFunc) WireOption {
	return func(r *WireRouter) {
		r.hooks.onDispatch = append(r.hooks.onDispatch, fn)
	}
}

// WithOnUnmatched adds a hook called when no consumer matches the raw
// bytes. Multiple hooks are called in order. Unmatched traffic on a shared
// channel is routine; hooks exist so callers can count or sample it, not
// fail on it.
//
// Example:
//
//	actionport.WithOnUnmatched(func(raw []byte) {
//	    metrics.Incr("port.unmatched")
//	})
func WithOnUnmatched(fn OnUnmatchedFunc) WireOption {
	return func(r *WireRouter) {
		r.hooks.onUnmatched = append(r.hooks.onUnmatched, fn)
	}
}

// WithOnDecodeError adds a hook called when a matched payload fails to
// unmarshal. Multiple hooks are called in order.
//
// Example:
//
//	actionport.WithOnDecodeError(func(tag string, err error) {
//	    logger.Error("bad payload", "tag", tag, "error", err)
//	})
func WithOnDecodeError(fn OnDecodeErrorFunc) WireOption {
	return func(r *WireRouter) {
		r.hooks.onDecodeError = append(r.hooks.onDecodeError, fn)
	}
}

// WithOnHandlerError adds a hook called when a consumer returns an error.
// Multiple hooks are called in order.
//
// Example:
//
//	actionport.WithOnHandlerError(func(tag string, err error) {
//	    logger.Error("handler failed", "tag", tag, "error", err)
//	})
func WithOnHandlerError(fn OnHandlerErrorFunc) WireOption {
	return func(r *WireRouter) {
		r.hooks.onHandlerError = append(r.hooks.onHandlerError, fn)
	}
}
