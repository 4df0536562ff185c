package compression

import (
	"errors"
	"io"
)

// EncodeRuns splits the sequence into maximal runs of at most [MaxRunLength]
// values. An empty sequence gives an empty, non-nil slice.
func EncodeRuns[T comparable](values []T) []Run[T] {
	runs := make([]Run[T], 0, estimateRunCount(len(values)))
	grouper := NewRunGrouper(values)
	for {
		run, err := grouper.GetNextRun()
		if errors.Is(err, io.EOF) {
			return runs
		}
		runs = append(runs, run)
	}
}

// ExpandRuns is the inverse of [EncodeRuns]. It repeats each run's value
// RunLength times, in order.
func ExpandRuns[T comparable](runs []Run[T]) []T {
	total := 0
	for _, run := range runs {
		total += run.RunLength
	}

	values := make([]T, 0, total)
	for _, run := range runs {
		for i := 0; i < run.RunLength; i++ {
			values = append(values, run.Value)
		}
	}
	return values
}

// Integer is the set of value types that can be flattened into an interleaved
// value/count sequence.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// FlattenRuns interleaves the runs as value, count, value, count, ...
func FlattenRuns[T Integer](runs []Run[T]) []int {
	flattened := make([]int, 0, len(runs)*2)
	for _, run := range runs {
		flattened = append(flattened, int(run.Value), run.RunLength)
	}
	return flattened
}

// estimateRunCount guesses an initial capacity for the output of EncodeRuns.
// Sample data from images and audio usually has short runs, so we assume an
// average of four values per run.
func estimateRunCount(n int) int {
	if n < 4 {
		return n
	}
	return n / 4
}
