package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go-funcs/pkg/funcs"
	"go-funcs/pkg/stream"
)

// ============================================================================
// DOMAIN LOGIC (EXAMPLE USAGE)
// ============================================================================

// Data Types
type RawLog struct {
	ID     int
	Source string
	Level  int
}
type AnalyzedEvent struct {
	ID       int
	Category string
}

// Generators
func generateLogs(source string, count int) func(emit func(RawLog) bool) error {
	return func(emit func(RawLog) bool) error {
		for i := 0; i < count; i++ {
			if !emit(RawLog{ID: i, Source: source, Level: i % 5}) {
				break
			}
		}
		return nil
	}
}

// Parallel Processor (simulates CPU-bound work)
func analyzeLog(log RawLog) (AnalyzedEvent, error) {
	time.Sleep(time.Microsecond)

	category := "INFO"
	if log.Level == 3 {
		category = "WARN"
	}
	if log.Level >= 4 {
		category = "ERROR"
	}
	return AnalyzedEvent{ID: log.ID, Category: category}, nil
}

// ============================================================================
// EXPLICIT PIPELINE DEMONSTRATION
// ============================================================================

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	P := runtime.GOMAXPROCS(0)
	fmt.Printf("--- Constructing Pipeline (Cores: %d) ---\n", P)
	startTime := time.Now()

	// Topology:
	// [GenA, GenB] -> (MergeN) -> (Filter: relevant) -> (ParMap: Analyze)
	//              -> (Partition) -> fixed-size batches

	// 1. Sources
	logsA := stream.FromGenerator(generateLogs("A", 200_000))
	logsB := stream.FromGenerator(generateLogs("B", 100_000))

	// 2. Merge (zero-copy fan-in)
	allLogs := stream.MergeN(logsA, logsB)

	// 3. Functional filtering: drop debug-level noise.
	relevant := funcs.Predicate[RawLog](func(l RawLog) bool { return l.Level > 0 })
	filtered := stream.Filter(allLogs, relevant)

	// 4. Intensive parallel processing (CPU-bound)
	analyzed := stream.ParMap(filtered, P, analyzeLog)

	// 5. Partition into shipping batches of 5000 events.
	batches, err := stream.Partition(ctx, analyzed, 5000)
	if err != nil {
		fmt.Printf("Pipeline Status: FAILED (%v)\n", err)
		return
	}

	total := 0
	for _, batch := range batches {
		total += len(batch)
	}
	fmt.Printf("Shipped %d batches (%d events).\n", len(batches), total)

	// 6. Lazy, memoized summary: computed once, on first request.
	summary := funcs.Lazy(func() map[string][]AnalyzedEvent {
		groups, gErr := stream.Collect(ctx,
			stream.FromSlice(flatten(batches)),
			stream.GroupingCollector(func(e AnalyzedEvent) string { return e.Category }),
		)
		if gErr != nil {
			return nil
		}
		return groups
	})

	for _, category := range []string{"INFO", "WARN", "ERROR"} {
		fmt.Printf("%-5s: %d events\n", category, len(summary()[category]))
	}

	fmt.Printf("--- Pipeline Complete in %s ---\n", time.Since(startTime))
}

func flatten(batches [][]AnalyzedEvent) []AnalyzedEvent {
	out := make([]AnalyzedEvent, 0, len(batches)*5000)
	for _, b := range batches {
		out = append(out, b...)
	}
	return out
}
