package core

import "context"

// Sink observes every record the processor writes.
type Sink interface {
	// Name returns the sink's identifier (e.g., "journald").
	Name() string

	// Emit receives one record. Errors are reported but never stop processing.
	Emit(ctx context.Context, rec Record) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context, rec Record) error

func (f SinkFunc) Name() string { return "func" }

func (f SinkFunc) Emit(ctx context.Context, rec Record) error { return f(ctx, rec) }
