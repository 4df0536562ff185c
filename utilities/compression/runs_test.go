package compression_test

import (
	"math/rand"
	"testing"

	c "github.com/dargueta/shrink/utilities/compression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type encodeRunsTestCase struct {
	Name     string
	Input    []int
	Expected []c.Run[int]
}

func TestEncodeRuns__Basic(t *testing.T) {
	tests := []encodeRunsTestCase{
		{"empty", []int{}, []c.Run[int]{}},
		{"single element", []int{42}, []c.Run[int]{{42, 1}}},
		{
			"mixed",
			[]int{5, 5, 5, 7, 7, 2},
			[]c.Run[int]{{5, 3}, {7, 2}, {2, 1}},
		},
		{
			"no runs",
			[]int{1, 2, 3},
			[]c.Run[int]{{1, 1}, {2, 1}, {3, 1}},
		},
		{
			"split at cap",
			repeatInt(9, 300),
			[]c.Run[int]{{9, 255}, {9, 45}},
		},
		{
			"exactly cap",
			repeatInt(1, 255),
			[]c.Run[int]{{1, 255}},
		},
		{
			"one over cap",
			repeatInt(1, 256),
			[]c.Run[int]{{1, 255}, {1, 1}},
		},
		{
			"two full runs",
			repeatInt(8, 510),
			[]c.Run[int]{{8, 255}, {8, 255}},
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runs := c.EncodeRuns(test.Input)
				require.NotNil(t, runs)
				assert.Equal(t, test.Expected, runs)
			},
		)
	}
}

func TestEncodeRuns__SignedSamples(t *testing.T) {
	runs := c.EncodeRuns([]int16{100, 100, -50})
	assert.Equal(t, []c.Run[int16]{{100, 2}, {-50, 1}}, runs)
	assert.Equal(t, []int{100, 2, -50, 1}, c.FlattenRuns(runs))
}

// Every token must be in range, adjacent tokens may only share a value when
// the first one is full, and expanding the tokens must give back the input.
func TestEncodeRuns__Properties(t *testing.T) {
	source := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		values := make([]uint8, source.Intn(3000))
		current := uint8(source.Intn(4))
		for i := range values {
			// Mostly long runs with the occasional change so we hit the cap.
			if source.Intn(400) == 0 {
				current = uint8(source.Intn(4))
			}
			values[i] = current
		}

		runs := c.EncodeRuns(values)
		for i, run := range runs {
			assert.GreaterOrEqual(t, run.RunLength, 1)
			assert.LessOrEqual(t, run.RunLength, c.MaxRunLength)
			if i > 0 && runs[i-1].Value == run.Value {
				assert.Equal(
					t,
					c.MaxRunLength,
					runs[i-1].RunLength,
					"run %d continues a value but the previous run isn't full",
					i)
			}
		}
		assert.Equal(t, values, c.ExpandRuns(runs), "trial %d didn't round-trip", trial)
	}
}

func TestExpandRuns__Empty(t *testing.T) {
	assert.Empty(t, c.ExpandRuns([]c.Run[byte]{}))
}

func repeatInt(value, count int) []int {
	values := make([]int, count)
	for i := range values {
		values[i] = value
	}
	return values
}
