package strata

// MessageHandler is the secondary trait of spec §4.8: it consumes every
// message of type T currently in the public log, once per RunHandler call.
type MessageHandler[T any] struct {
	Handle func(msg T, acc *Accessor, reg *Registry)
}

// RunHandler iterates Target's public log serially, invoking h.Handle for
// each message in log order.
func RunHandler[T any](reg *Registry, h MessageHandler[T]) {
	acc := newAccessor(reg, AccessSet{})
	for _, msg := range MessagesOf[T](reg.Messages()) {
		h.Handle(msg, acc, reg)
	}
}
