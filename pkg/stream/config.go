package stream

import "runtime"

// ============================================================================
// SYSTEM CONFIGURATION
// ============================================================================

// DefaultVectorSize defines the default capacity and flush threshold for
// data batches (vectors). A larger size improves throughput by reducing
// channel overhead, but increases latency.
const DefaultVectorSize = 1024

// ChannelBuffer defines the buffer size for the channels connecting
// pipeline stages. It provides backpressure to prevent faster stages from
// overwhelming slower ones.
const ChannelBuffer = 64

// sanitizeDOP ensures the degree of parallelism is a valid positive
// integer. Values <= 0 default to the number of logical CPUs (GOMAXPROCS).
func sanitizeDOP(dop int) int {
	if dop <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return dop
}
