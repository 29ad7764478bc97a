package strata

import (
	"reflect"
	"sync"
)

// messageChannel is one message type's append-only public log plus
// per-worker staging buffers (spec §3/§4.8).
type messageChannel[T any] struct {
	mu      sync.Mutex
	public  []T
	staging map[int][]T
}

func newMessageChannel[T any]() *messageChannel[T] {
	return &messageChannel[T]{staging: make(map[int][]T)}
}

func (c *messageChannel[T]) send(v T) {
	c.mu.Lock()
	c.public = append(c.public, v)
	c.mu.Unlock()
}

func (c *messageChannel[T]) sendTL(worker int, v T) {
	c.mu.Lock()
	c.staging[worker] = append(c.staging[worker], v)
	c.mu.Unlock()
}

// sync drains every worker's staging into the public log and clears
// staging. Order across workers is unspecified; order within one worker's
// staging is preserved (spec §4.8/§5).
func (c *messageChannel[T]) sync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, buf := range c.staging {
		c.public = append(c.public, buf...)
	}
	c.staging = make(map[int][]T)
}

// dropStaging discards worker's staged messages without syncing them. The
// parallel executors do not call it: a panicking worker is not recovered,
// so its staged messages are simply never reached by Sync.
func (c *messageChannel[T]) dropStaging(worker int) {
	c.mu.Lock()
	delete(c.staging, worker)
	c.mu.Unlock()
}

func (c *messageChannel[T]) messagesSnapshot() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.public...)
}

func (c *messageChannel[T]) flush() {
	c.mu.Lock()
	c.public = c.public[:0]
	c.mu.Unlock()
}

// anyChannel is the type-erased surface Messages needs to drive every
// registered channel uniformly (sync/flush during a barrier that doesn't
// care about T).
type anyChannel interface {
	sync()
	flush()
}

// Messages is the registry's message bus: a mapping from message type to
// its channel (spec §3/§4.8). Grounded on the teacher's eventbus.go insofar
// as both key a registration map by reflect.Type; the append-only
// log-plus-sync model itself replaces the teacher's publish/subscribe
// dispatch, which has no staging/barrier concept to reuse.
type Messages struct {
	mu       sync.RWMutex
	channels map[reflect.Type]anyChannel
}

func newMessages() *Messages {
	return &Messages{channels: make(map[reflect.Type]anyChannel)}
}

// RegisterMessage declares T as a usable message type on m. Idempotent.
func RegisterMessage[T any](m *Messages) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.channels[t]; !ok {
		m.channels[t] = newMessageChannel[T]()
	}
}

func (m *Messages) isRegistered(t reflect.Type) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.channels[t]
	return ok
}

func channelFor[T any](m *Messages) *messageChannel[T] {
	t := reflect.TypeOf((*T)(nil)).Elem()
	m.mu.RLock()
	ch, ok := m.channels[t]
	m.mu.RUnlock()
	if !ok {
		panicUnregisteredMessage()
	}
	return ch.(*messageChannel[T])
}

// Send pushes v onto T's public log directly. Serial contexts only - a
// parallel worker must use SenderTL (spec §4.8's send/send_tl split).
func Send[T any](m *Messages, v T) {
	channelFor[T](m).send(v)
}

// SenderTL is a per-worker handle bound to one message type and one worker
// identity, used inside parallel iteration.
type SenderTL[T any] struct {
	ch     *messageChannel[T]
	worker int
}

func newSenderTL[T any](m *Messages, worker int) SenderTL[T] {
	return SenderTL[T]{ch: channelFor[T](m), worker: worker}
}

// Send stages v on this worker's buffer; it becomes visible in the public
// log only after the next Sync.
func (s SenderTL[T]) Send(v T) { s.ch.sendTL(s.worker, v) }

func (s SenderTL[T]) dropStaging() { s.ch.dropStaging(s.worker) }

// Sync drains every registered channel's staging into its public log. This
// is the deterministic sync point of spec §4.8: a barrier, no iteration
// overlaps it.
func (m *Messages) Sync() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, ch := range m.channels {
		ch.sync()
	}
}

// MessagesOf returns a snapshot of T's public log.
func MessagesOf[T any](m *Messages) []T {
	return channelFor[T](m).messagesSnapshot()
}

// Flush clears T's public log.
func Flush[T any](m *Messages) {
	channelFor[T](m).flush()
}
