package stream

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// ============================================================================
// EXECUTION UTILITIES
// ============================================================================

// drain consumes and releases all vectors from a channel until it is
// closed. This prevents upstream deadlocks during failures or cancellation
// by ensuring producers do not block on a full channel.
func drain[T any](ch <-chan *Vector[T]) {
	for vec := range ch {
		vec.Release()
	}
}

// executionFromErrGroup creates an Execution handle from an errgroup.Group.
// It starts a goroutine to wait for the group to complete and captures the
// result.
func executionFromErrGroup(g *errgroup.Group) Execution {
	done := make(chan struct{})
	var execErr error
	go func() {
		execErr = g.Wait()
		close(done)
	}()
	return Execution{
		Done: done,
		Err:  func() error { return execErr },
	}
}

// executionFromChan wraps a bare done channel as an Execution with no
// error of its own.
func executionFromChan(done <-chan struct{}) Execution {
	return Execution{Done: done, Err: func() error { return nil }}
}

// combineExecutions merges multiple execution handles into a single one,
// with a fixed ordering: wait for the primary execution, run cleanup (e.g.
// closing output channels), then wait for all dependencies (parent stages,
// drainers). The first non-nil error wins.
func combineExecutions(primary Execution, cleanup func(), dependencies ...Execution) Execution {
	done := make(chan struct{})
	var combinedErr error
	var mu sync.Mutex

	captureErr := func(err error) {
		if err != nil {
			mu.Lock()
			defer mu.Unlock()
			if combinedErr == nil {
				combinedErr = err
			}
		}
	}

	go func() {
		defer close(done)

		<-primary.Done
		captureErr(primary.Err())

		if cleanup != nil {
			cleanup()
		}

		var wg sync.WaitGroup
		for _, dep := range dependencies {
			if dep.Done == nil {
				continue
			}
			wg.Add(1)
			go func(e Execution) {
				defer wg.Done()
				<-e.Done
				captureErr(e.Err())
			}(dep)
		}
		wg.Wait()
	}()

	return Execution{
		Done: done,
		Err: func() error {
			mu.Lock()
			defer mu.Unlock()
			return combinedErr
		},
	}
}
