package events

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event identifies an authentication lifecycle event.
type Event string

const (
	EventUserAuthenticated    Event = "user-authenticated"
	EventAnonymousModeEnabled Event = "anonymous-mode-enabled"
	EventAuthError            Event = "auth-error"
)

// Payload is the ephemeral event payload handed to listeners. Timestamp is
// epoch milliseconds, assigned at emit time. Payloads are never persisted.
type Payload struct {
	UserID    string
	Error     string
	Timestamp int64
}

// Listener receives event payloads synchronously during emit.
type Listener func(Payload)

type registration struct {
	id uuid.UUID
	fn Listener
}

// Bus dispatches auth events to registered listeners and channel
// subscribers. The zero value is not usable; create one with NewBus.
// Safe for concurrent use.
type Bus struct {
	logger *slog.Logger

	mu        sync.Mutex
	listeners map[Event][]registration
	subs      map[*Subscription]struct{}
}

// BusOption configures a Bus.
type BusOption func(*Bus)

// WithLogger sets the logger used to report panicking listeners.
func WithLogger(logger *slog.Logger) BusOption {
	return func(b *Bus) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// NewBus creates an event bus with no listeners.
func NewBus(opts ...BusOption) *Bus {
	b := &Bus{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		listeners: make(map[Event][]registration),
		subs:      make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddListener registers fn for event and returns an unsubscribe closure that
// removes exactly this registration. Unsubscribing twice is a no-op. When the
// last listener for an event is removed, the event's registry entry is
// dropped so dynamically created event names cannot accumulate.
func (b *Bus) AddListener(event Event, fn Listener) func() {
	id := uuid.New()

	b.mu.Lock()
	b.listeners[event] = append(b.listeners[event], registration{id: id, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		regs := b.listeners[event]
		for i, reg := range regs {
			if reg.id == id {
				b.listeners[event] = append(regs[:i:i], regs[i+1:]...)
				break
			}
		}
		if len(b.listeners[event]) == 0 {
			delete(b.listeners, event)
		}
	}
}

// ListenerCount returns the number of listeners registered for event.
func (b *Bus) ListenerCount(event Event) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[event])
}

// RemoveAllListeners clears the given events' listeners, or every callback
// listener when called without arguments. Channel subscriptions are not
// affected; close those individually. Intended for teardown and test reset.
func (b *Bus) RemoveAllListeners(events ...Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(events) == 0 {
		clear(b.listeners)
		return
	}
	for _, event := range events {
		delete(b.listeners, event)
	}
}

// EmitUserAuthenticated broadcasts a user-authenticated event.
func (b *Bus) EmitUserAuthenticated(userID string) {
	b.emit(EventUserAuthenticated, Payload{
		UserID:    userID,
		Timestamp: time.Now().UnixMilli(),
	})
}

// EmitAnonymousModeEnabled broadcasts an anonymous-mode-enabled event.
func (b *Bus) EmitAnonymousModeEnabled() {
	b.emit(EventAnonymousModeEnabled, Payload{
		Timestamp: time.Now().UnixMilli(),
	})
}

// EmitAuthError broadcasts an auth-error event carrying message.
func (b *Bus) EmitAuthError(message string) {
	b.emit(EventAuthError, Payload{
		Error:     message,
		Timestamp: time.Now().UnixMilli(),
	})
}

// emit invokes every currently registered listener for event in registration
// order and forwards the payload to channel subscribers. The listener list is
// snapshotted before iteration, so registry mutation during dispatch is safe.
func (b *Bus) emit(event Event, payload Payload) {
	b.mu.Lock()
	snapshot := make([]registration, len(b.listeners[event]))
	copy(snapshot, b.listeners[event])
	subs := make([]*Subscription, 0, len(b.subs))
	for sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, reg := range snapshot {
		b.invoke(event, reg.fn, payload)
	}

	for _, sub := range subs {
		sub.send(Envelope{Event: event, Payload: payload})
	}
}

// invoke runs one listener, isolating panics so the remaining listeners
// still run.
func (b *Bus) invoke(event Event, fn Listener, payload Payload) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("auth event listener panicked",
				slog.String("event", string(event)),
				slog.Any("panic", r),
			)
		}
	}()
	fn(payload)
}
