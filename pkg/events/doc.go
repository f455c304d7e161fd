// Package events is an in-process broadcaster for authentication lifecycle
// events: user authenticated, anonymous mode enabled, auth error.
//
// The Bus offers two consumption styles. Callback listeners registered with
// AddListener are invoked synchronously on the emitting goroutine, in
// registration order, each isolated so one panicking listener cannot starve
// the rest. Channel subscriptions created with Subscribe receive the same
// payloads through buffered channels for consumers outside the direct call
// chain; slow subscribers have messages dropped rather than blocking the
// emitter.
//
// Dispatch iterates over a snapshot of the listener list, so a listener may
// safely unsubscribe itself (or others) during its own invocation; the
// removal takes effect on the next emit.
//
// This is fire-and-forget notification, not a durable queue: no retry, no
// backpressure, no persistence.
package events
