package stream

import "sync"

// vecPool manages a pool of Vector objects to minimize memory allocations.
// It wraps sync.Pool to provide type-safe access to Vector[T]. All vectors
// from one pool share the same capacity, which doubles as the stage's batch
// flush threshold.
type vecPool[T any] struct {
	pool sync.Pool
	size int
}

func newVecPool[T any](size int) *vecPool[T] {
	p := &vecPool[T]{size: size}
	p.pool.New = func() any {
		return &Vector[T]{
			Data: make([]T, 0, size),
		}
	}
	return p
}

// Get retrieves a vector from the pool or creates a new one if the pool is
// empty. The vector's pool reference is restored so that Release recycles
// it here.
func (p *vecPool[T]) Get() *Vector[T] {
	v := p.pool.Get().(*Vector[T])
	v.pool = p
	return v
}

// Put returns a vector to the pool, resetting its length while preserving
// the underlying capacity.
func (p *vecPool[T]) Put(vec *Vector[T]) {
	vec.Data = vec.Data[:0]
	p.pool.Put(vec)
}
