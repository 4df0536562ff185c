package preview

import (
	"encoding/binary"
	"io"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/media"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	// DefaultSampleLimit is the number of leading samples plotted by
	// [AudioScatter].
	DefaultSampleLimit = 2500
	// DefaultTokenLimit is the number of leading tokens plotted by
	// [AudioTokenScatter].
	DefaultTokenLimit = 500
)

// AudioScatter plots the first `limit` samples as an SVG scatter plot, with
// the amplitude on the X axis and the sample's index on the Y axis.
func AudioScatter(w io.Writer, samples []int16, limit int, title string) error {
	if limit >= 0 && len(samples) > limit {
		samples = samples[:limit]
	}
	if len(samples) == 0 {
		return serrors.ErrEmptyInput.WithMessage("no samples to plot")
	}

	amplitudes := make([]float64, len(samples))
	indexes := make([]float64, len(samples))
	for i, sample := range samples {
		amplitudes[i] = float64(sample)
		indexes[i] = float64(i)
	}
	return renderScatter(w, title, "Sample", amplitudes, indexes)
}

// AudioTokenScatter plots the values of the first `limit` tokens in a
// compressed audio payload against the token's index. It reads the payload the
// way [media.EncodeAudio] lays it out; a trailing partial token is ignored.
func AudioTokenScatter(w io.Writer, payload []byte, limit int, title string) error {
	tokenCount := len(payload) / media.AudioTokenSize
	if limit >= 0 && tokenCount > limit {
		tokenCount = limit
	}
	if tokenCount == 0 {
		return serrors.ErrEmptyInput.WithMessage("no tokens to plot")
	}

	values := make([]float64, tokenCount)
	indexes := make([]float64, tokenCount)
	for i := 0; i < tokenCount; i++ {
		token := payload[i*media.AudioTokenSize:]
		values[i] = float64(int16(binary.LittleEndian.Uint16(token)))
		indexes[i] = float64(i)
	}
	return renderScatter(w, title, "Token", values, indexes)
}

func renderScatter(w io.Writer, title, yName string, xValues, yValues []float64) error {
	graph := chart.Chart{
		Title:  title,
		Width:  700,
		Height: 500,
		XAxis: chart.XAxis{
			Name:  "Amplitude",
			Range: paddedRange(xValues),
		},
		YAxis: chart.YAxis{
			Name:  yName,
			Range: paddedRange(yValues),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    1,
				},
				XValues: xValues,
				YValues: yValues,
			},
		},
	}

	if err := graph.Render(chart.SVG, w); err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}
	return nil
}

// paddedRange returns the range of the values, widened by one on each side if
// all values are the same. The chart refuses to draw an axis with no extent.
func paddedRange(values []float64) *chart.ContinuousRange {
	low, high := values[0], values[0]
	for _, value := range values[1:] {
		low = min(low, value)
		high = max(high, value)
	}
	if low == high {
		low--
		high++
	}
	return &chart.ContinuousRange{Min: low, Max: high}
}
