// Package report summarizes compression results for people and spreadsheets.
package report

import (
	"io"

	"github.com/dargueta/shrink"
	serrors "github.com/dargueta/shrink/errors"
	"github.com/gocarina/gocsv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Row is one line of a batch report.
type Row struct {
	File           string  `csv:"file"`
	Kind           string  `csv:"kind"`
	Output         string  `csv:"output"`
	OriginalSize   int     `csv:"original_size"`
	CompressedSize int     `csv:"compressed_size"`
	ReductionRatio float64 `csv:"reduction_ratio"`
	Error          string  `csv:"error"`
}

// NewRow summarizes a successful result.
func NewRow(result *shrink.Result) Row {
	return Row{
		File:           result.Name,
		Kind:           result.Kind.String(),
		Output:         result.OutputName(),
		OriginalSize:   result.OriginalSize,
		CompressedSize: result.CompressedSize(),
		ReductionRatio: result.ReductionRatio(),
	}
}

// NewErrorRow records a file that couldn't be compressed.
func NewErrorRow(name string, originalSize int, err error) Row {
	kind, _ := shrink.KindForFilename(name)
	return Row{
		File:         name,
		Kind:         kind.String(),
		OriginalSize: originalSize,
		Error:        err.Error(),
	}
}

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	if err := gocsv.Marshal(rows, w); err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}
	return nil
}

var printer = message.NewPrinter(language.English)

// FormatSize formats a byte count with thousands separators, e.g. "1,234 bytes".
func FormatSize(size int) string {
	return printer.Sprintf("%d bytes", size)
}

// FormatRatio formats a reduction ratio as a percentage with two decimals.
func FormatRatio(ratio float64) string {
	return printer.Sprintf("%.2f%%", ratio)
}

// Summary is the three-line summary shown after compressing a file.
func Summary(result *shrink.Result) string {
	return printer.Sprintf(
		"Original Size: %s\nCompressed Size: %s\nReduction Ratio: %s\n",
		FormatSize(result.OriginalSize),
		FormatSize(result.CompressedSize()),
		FormatRatio(result.ReductionRatio()),
	)
}
