package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestPartitionEvenSplit(t *testing.T) {
	ctx := context.Background()

	chunks, err := Partition(ctx, FromSlice([]int{1, 2, 3, 4, 5, 6}), 2)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	want := [][]int{{1, 2}, {3, 4}, {5, 6}}
	assertChunksEqual(t, want, chunks)
}

func TestPartitionTrailingChunk(t *testing.T) {
	ctx := context.Background()

	chunks, err := Partition(ctx, FromSlice([]int{1, 2, 3, 4, 5}), 2)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}

	want := [][]int{{1, 2}, {3, 4}, {5}}
	assertChunksEqual(t, want, chunks)
}

func TestPartitionInvalidSize(t *testing.T) {
	ctx := context.Background()

	for _, size := range []int{0, -1, -100} {
		consumed := false
		src := FromGenerator(func(emit func(int) bool) error {
			consumed = true
			emit(1)
			return nil
		})

		chunks, err := Partition(ctx, src, size)
		if !errors.Is(err, ErrInvalidPartitionSize) {
			t.Errorf("size %d: error = %v, want ErrInvalidPartitionSize", size, err)
		}
		if chunks != nil {
			t.Errorf("size %d: expected no chunks, got %v", size, chunks)
		}
		if consumed {
			t.Errorf("size %d: input was consumed despite invalid size", size)
		}
	}
}

func TestPartitionEmptyAndNil(t *testing.T) {
	ctx := context.Background()

	for name, src := range map[string]Stream[int]{
		"empty": FromSlice([]int{}),
		"nil":   FromSlice[int](nil),
	} {
		chunks, err := Partition(ctx, src, 3)
		if err != nil {
			t.Fatalf("%s: Partition failed: %v", name, err)
		}
		if len(chunks) != 0 {
			t.Errorf("%s: expected empty chunk sequence, got %v", name, chunks)
		}
	}
}

// TestPartitionInvariants checks, across a grid of input lengths and sizes,
// that every chunk but the last is full, the last is non-empty, and
// concatenating the chunks reproduces the input exactly.
func TestPartitionInvariants(t *testing.T) {
	ctx := context.Background()

	for _, total := range []int{1, 2, 7, 64, 1000, 1025} {
		for _, size := range []int{1, 2, 3, 7, 64, 2000} {
			t.Run(fmt.Sprintf("n%d_size%d", total, size), func(t *testing.T) {
				chunks, err := Partition(ctx, Range(0, total), size)
				if err != nil {
					t.Fatalf("Partition failed: %v", err)
				}

				next := 0
				for i, chunk := range chunks {
					if i < len(chunks)-1 && len(chunk) != size {
						t.Errorf("chunk %d has length %d, want %d", i, len(chunk), size)
					}
					if len(chunk) == 0 || len(chunk) > size {
						t.Errorf("chunk %d has invalid length %d", i, len(chunk))
					}
					for _, v := range chunk {
						if v != next {
							t.Fatalf("element out of order: got %d, want %d", v, next)
						}
						next++
					}
				}
				if next != total {
					t.Errorf("concatenation reproduced %d elements, want %d", next, total)
				}
			})
		}
	}
}

func TestPartitionSizeLargerThanInput(t *testing.T) {
	ctx := context.Background()

	chunks, err := Partition(ctx, FromSlice([]string{"a", "b"}), 10)
	if err != nil {
		t.Fatalf("Partition failed: %v", err)
	}
	assertChunksEqual(t, [][]string{{"a", "b"}}, chunks)
}

func TestPartitionInto(t *testing.T) {
	ctx := context.Background()

	// Pack chunk sums into a slice: a finishing transform into an
	// arbitrary result container.
	sums, err := PartitionInto(ctx, FromSlice([]int{1, 2, 3, 4, 5}), 2, func(chunks [][]int) []int {
		out := make([]int, len(chunks))
		for i, chunk := range chunks {
			for _, v := range chunk {
				out[i] += v
			}
		}
		return out
	})
	if err != nil {
		t.Fatalf("PartitionInto failed: %v", err)
	}

	want := []int{3, 7, 5}
	if len(sums) != len(want) {
		t.Fatalf("sums = %v, want %v", sums, want)
	}
	for i := range want {
		if sums[i] != want[i] {
			t.Errorf("sums[%d] = %d, want %d", i, sums[i], want[i])
		}
	}
}

func TestPartitionIntoInvalidSize(t *testing.T) {
	ctx := context.Background()

	_, err := PartitionInto(ctx, FromSlice([]int{1}), 0, func(chunks [][]int) int {
		return len(chunks)
	})
	if !errors.Is(err, ErrInvalidPartitionSize) {
		t.Fatalf("error = %v, want ErrInvalidPartitionSize", err)
	}
}

func TestPartitionSeq(t *testing.T) {
	ctx := context.Background()

	seq, err := PartitionSeq(ctx, FromSlice([]int{1, 2, 3, 4, 5}), 2)
	if err != nil {
		t.Fatalf("PartitionSeq failed: %v", err)
	}

	var got [][]int
	for chunk, err := range seq {
		if err != nil {
			t.Fatalf("unexpected sequence error: %v", err)
		}
		got = append(got, chunk)
	}
	assertChunksEqual(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

func TestPartitionSeqEarlyBreak(t *testing.T) {
	ctx := context.Background()

	seq, err := PartitionSeq(ctx, Range(0, 1_000_000), 10)
	if err != nil {
		t.Fatalf("PartitionSeq failed: %v", err)
	}

	// Take only the first two chunks; the pipeline must shut down cleanly.
	taken := 0
	for chunk, err := range seq {
		if err != nil {
			t.Fatalf("unexpected sequence error: %v", err)
		}
		if len(chunk) != 10 {
			t.Errorf("chunk length = %d, want 10", len(chunk))
		}
		taken++
		if taken == 2 {
			break
		}
	}
	if taken != 2 {
		t.Errorf("took %d chunks, want 2", taken)
	}
}

func TestPartitionSeqInvalidSize(t *testing.T) {
	ctx := context.Background()

	if _, err := PartitionSeq(ctx, FromSlice([]int{1}), -3); !errors.Is(err, ErrInvalidPartitionSize) {
		t.Fatalf("error = %v, want ErrInvalidPartitionSize", err)
	}
}

func TestPartitionSeqPropagatesError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("generator failed")

	src := FromGenerator(func(emit func(int) bool) error {
		emit(1)
		return boom
	})

	seq, err := PartitionSeq(ctx, src, 2)
	if err != nil {
		t.Fatalf("PartitionSeq failed: %v", err)
	}

	var last error
	for _, err := range seq {
		last = err
	}
	if !errors.Is(last, boom) {
		t.Fatalf("final sequence error = %v, want %v", last, boom)
	}
}

// TestPartitionCollectorCombineAlignment documents the combiner's ordering
// hazard: concatenating partials whose boundary is not chunk-aligned breaks
// the "all chunks but the last are full" invariant, and Rechunk restores it.
func TestPartitionCollectorCombineAlignment(t *testing.T) {
	col, err := PartitionCollector[int](2)
	if err != nil {
		t.Fatalf("PartitionCollector failed: %v", err)
	}

	// Left partial holds 3 elements (unaligned), right holds 3.
	left := col.Supply()
	for _, v := range []int{1, 2, 3} {
		left = col.Accumulate(left, v)
	}
	right := col.Supply()
	for _, v := range []int{4, 5, 6} {
		right = col.Accumulate(right, v)
	}

	merged := col.Finish(col.Combine(left, right))

	// The raw merge carries a short chunk in the middle.
	assertChunksEqual(t, [][]int{{1, 2}, {3}, {4, 5}, {6}}, merged)

	// Rechunk restores the invariant without reordering elements.
	fixed, err := Rechunk(merged, 2)
	if err != nil {
		t.Fatalf("Rechunk failed: %v", err)
	}
	assertChunksEqual(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, fixed)
}

func TestRechunkInvalidSize(t *testing.T) {
	if _, err := Rechunk([][]int{{1}}, 0); !errors.Is(err, ErrInvalidPartitionSize) {
		t.Fatalf("error = %v, want ErrInvalidPartitionSize", err)
	}
}

func assertChunksEqual[T comparable](t *testing.T, want, got [][]T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("chunk count = %d, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("chunk %d = %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("chunk %d element %d = %v, want %v", i, j, got[i][j], want[i][j])
			}
		}
	}
}
