package stream

import "context"

// ============================================================================
// VECTOR TRANSPORT
// ============================================================================

// Vector holds a slice of data and a reference to its origin pool.
// It is the fundamental unit of data transport in the pipeline.
type Vector[T any] struct {
	Data []T
	pool *vecPool[T]
}

// Release returns the vector to its origin pool.
// It must be called exactly once by the consumer when the data is no longer
// needed.
func (v *Vector[T]) Release() {
	if v == nil {
		return
	}
	if v.pool != nil {
		v.pool.Put(v)
		v.pool = nil
	}
}

// ============================================================================
// STREAM BLUEPRINT
// ============================================================================

// Stream is a lazy blueprint of a data flow. Invoking pipe starts the
// stage's goroutines and returns the channel of vectors it produces plus an
// Execution handle for its lifecycle. A Stream is meant to be consumed by
// exactly one terminal operator.
type Stream[T any] struct {
	pipe func(ctx context.Context) (<-chan *Vector[T], Execution)
}

// Execution tracks the lifecycle of a running pipeline stage.
// Done is closed when the stage (including its upstream dependencies) has
// fully stopped; Err reports the first failure and is only meaningful after
// Done is closed.
type Execution struct {
	Done <-chan struct{}
	Err  func() error
}
