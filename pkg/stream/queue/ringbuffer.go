// Package queue provides the lock-free SPSC ring buffer backing the
// stream package's asynchronous boundaries.
package queue

import (
	"runtime"
	"sync/atomic"
)

// RingBuffer is a lock-free Single-Producer Single-Consumer (SPSC) queue.
// It is optimized for high-throughput passing of pointers between two
// goroutines. It is NOT safe for multiple producers or multiple consumers.
type RingBuffer[T any] struct {
	// Cache line padding to prevent false sharing.
	_padding0 [8]uint64
	head      atomic.Uint64
	_padding1 [8]uint64
	tail      atomic.Uint64
	_padding2 [8]uint64
	mask      uint64
	buffer    []T
	closed    atomic.Bool
}

// NewRingBuffer creates a new SPSC RingBuffer with the given capacity.
// Capacity is rounded up to the next power of 2.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 2 {
		capacity = 2
	}
	// Round up to power of 2.
	// See: https://graphics.stanford.edu/~seander/bithacks.html#RoundUpPowerOf2
	capacity--
	capacity |= capacity >> 1
	capacity |= capacity >> 2
	capacity |= capacity >> 4
	capacity |= capacity >> 8
	capacity |= capacity >> 16
	capacity++

	return &RingBuffer[T]{
		buffer: make([]T, capacity),
		mask:   uint64(capacity - 1),
	}
}

// Offer adds an item to the queue. Returns false if the queue is full.
// Only safe for a single producer.
func (rb *RingBuffer[T]) Offer(item T) bool {
	tail := rb.tail.Load()
	head := rb.head.Load()

	if tail-head > rb.mask {
		return false // Full
	}

	rb.buffer[tail&rb.mask] = item
	rb.tail.Store(tail + 1)
	return true
}

// Poll removes an item from the queue. Returns false if the queue is empty.
// Only safe for a single consumer.
func (rb *RingBuffer[T]) Poll() (T, bool) {
	head := rb.head.Load()
	tail := rb.tail.Load()

	if head == tail {
		var zero T
		return zero, false // Empty
	}

	item := rb.buffer[head&rb.mask]
	// Help GC by zeroing the slot if T is a pointer.
	var zero T
	rb.buffer[head&rb.mask] = zero

	rb.head.Store(head + 1)
	return item, true
}

// SpinPoll polls the queue, yielding between attempts, before giving up.
// This reduces latency when the producer is only briefly behind.
func (rb *RingBuffer[T]) SpinPoll(spins int) (T, bool) {
	for i := 0; i < spins; i++ {
		if item, ok := rb.Poll(); ok {
			return item, true
		}
		runtime.Gosched()
	}
	var zero T
	return zero, false
}

// Close marks the queue as closed. The producer must not Offer afterwards.
func (rb *RingBuffer[T]) Close() {
	rb.closed.Store(true)
}

// IsClosed returns true once the queue is closed and fully drained.
func (rb *RingBuffer[T]) IsClosed() bool {
	return rb.closed.Load() && rb.head.Load() == rb.tail.Load()
}
