package events

import (
	"context"
	"sync"
)

// Envelope pairs a payload with the event name for channel consumers, which
// unlike callback listeners receive every event through one channel.
type Envelope struct {
	Event   Event
	Payload Payload
}

// Subscription is a channel-based view of the bus for consumers outside the
// direct call chain. Messages for a full buffer are dropped rather than
// blocking the emitter.
type Subscription struct {
	bus *Bus
	ch  chan Envelope

	mu     sync.RWMutex
	closed bool
}

// Subscribe creates a channel subscription receiving every emitted event.
// bufferSize is clamped to a minimum of 1; a zero buffer would make every
// send blocking and defeat the non-blocking dispatch. The subscription is
// closed automatically when ctx is cancelled.
func (b *Bus) Subscribe(ctx context.Context, bufferSize int) *Subscription {
	sub := &Subscription{
		bus: b,
		ch:  make(chan Envelope, max(bufferSize, 1)),
	}

	b.mu.Lock()
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			<-ctx.Done()
			sub.Close()
		}()
	}

	return sub
}

// Events returns the receive channel. It is closed when the subscription
// closes.
func (s *Subscription) Events() <-chan Envelope {
	return s.ch
}

// Close detaches the subscription from the bus and closes the channel.
// Idempotent.
func (s *Subscription) Close() {
	s.bus.mu.Lock()
	delete(s.bus.subs, s)
	s.bus.mu.Unlock()

	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
	s.mu.Unlock()
}

// send delivers non-blocking; a closed or full subscription drops the
// message.
func (s *Subscription) send(env Envelope) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return
	}

	select {
	case s.ch <- env:
	default:
	}
}
