package compression

import (
	"io"
)

// MaxRunLength is the longest run a single [Run] can describe. Longer runs of
// the same value are split into consecutive runs.
const MaxRunLength = 255

// Run represents a single run of a particular value.
type Run[T comparable] struct {
	// Value is the value repeated in this run.
	Value T
	// RunLength gives the number of times the value occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be in [1, MaxRunLength]. A value less
	// than 1 indicates the input was exhausted.
	RunLength int
}

// InvalidRun returns the run [RunGrouper.GetNextRun] gives back once the input
// is exhausted.
func InvalidRun[T comparable]() Run[T] {
	return Run[T]{}
}

// RunGrouper splits an in-memory sequence into runs of identical values.
type RunGrouper[T comparable] struct {
	values []T
	offset int
}

func NewRunGrouper[T comparable](values []T) *RunGrouper[T] {
	return &RunGrouper[T]{values: values}
}

// GetNextRun returns a [Run] for the next value or run of values in the
// sequence. Once the sequence is exhausted it returns [InvalidRun] and io.EOF.
func (grouper *RunGrouper[T]) GetNextRun() (Run[T], error) {
	if grouper.offset >= len(grouper.values) {
		return InvalidRun[T](), io.EOF
	}

	first := grouper.values[grouper.offset]
	runLength := 1
	for runLength < MaxRunLength {
		next := grouper.offset + runLength
		if next >= len(grouper.values) || grouper.values[next] != first {
			break
		}
		runLength++
	}

	grouper.offset += runLength
	return Run[T]{Value: first, RunLength: runLength}, nil
}
