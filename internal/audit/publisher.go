// Package audit keeps an append-only trail of issued attestations. Emission
// is best-effort: an unreachable sink must never change an HTTP response.
package audit

import (
	"context"
	"time"
)

// Sink receives audit events. Implementations must be safe for concurrent
// use.
type Sink interface {
	Append(ctx context.Context, ev Event) error
}

// Publisher stamps and forwards events to a sink so callers can swap sinks
// in tests.
type Publisher struct {
	sink Sink
}

func NewPublisher(sink Sink) *Publisher {
	return &Publisher{sink: sink}
}

// Emit forwards one event, defaulting the timestamp. Safe on a nil
// publisher so wiring the trail stays optional.
func (p *Publisher) Emit(ctx context.Context, ev Event) error {
	if p == nil || p.sink == nil {
		return nil
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	return p.sink.Append(ctx, ev)
}
