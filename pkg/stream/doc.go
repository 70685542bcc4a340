// Package stream provides a vectorized, concurrent pipeline framework built
// around the functional values of go-funcs/pkg/funcs.
//
// Data moves through a pipeline in pooled batches (vectors) to amortize the
// cost of channel operations. Pipelines are lazy blueprints: nothing runs
// until a terminal operator (Reduce, Collect, Partition, FindFirst, ...)
// drives them, and every multi-goroutine stage uses structured concurrency
// for robust error handling and cancellation.
//
// Key features include:
//   - Zero-allocation vector pooling.
//   - A collector layer (Collect, PartitionCollector) for reusable folds.
//   - Parallel operators (ParMap, MergeN) for multi-core utilization.
//
// Basic usage involves creating a source, applying transformations, and
// consuming the result with a terminal operator.
package stream
