package o2m

import "runtime"

// numWorkers returns the fan-out width for bulk per-row parallel
// operations: one goroutine per available processor.
func numWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// ChunkSpan is a half-open [Start,End) partition of an outer row index,
// used by every bulk per-row parallel operation. Exported so
// m2m and mm2m can reuse the same chunking policy for their own
// errgroup-based fan-out (e.g. m2m's position-table resync).
type ChunkSpan struct {
	Start, End int
}

// ChunkRanges partitions [0,n) into at most GOMAXPROCS contiguous spans
// of near-equal size for errgroup fan-out.
func ChunkRanges(n int) []ChunkSpan {
	workers := numWorkers()
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	spans := make([]ChunkSpan, 0, workers)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		spans = append(spans, ChunkSpan{Start: start, End: end})
	}

	return spans
}
