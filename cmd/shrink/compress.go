package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dargueta/shrink"
	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/report"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"
)

func compressFiles(context *cli.Context) error {
	if context.NArg() == 0 {
		return serrors.ErrInvalidArgument.WithMessage("no files given")
	}

	logger := log.New(io.Discard, "", 0)
	if context.Bool("verbose") {
		logger.SetOutput(context.App.ErrWriter)
	}

	outputDir := context.String("output-dir")
	previewDir := context.String("preview-dir")
	for _, dir := range []string{outputDir, previewDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return serrors.ErrIOFailed.Wrap(err)
		}
	}

	opts := shrink.Options{
		Workers:       context.Int("workers"),
		PreviewFrames: context.Int("preview-frames"),
	}
	if opts.PreviewFrames == 0 {
		opts.PreviewFrames = -1
	}

	var result error
	rows := make([]report.Row, 0, context.NArg())

	for _, path := range context.Args().Slice() {
		logger.Printf("compressing %s", path)
		row, err := compressFile(context, path, outputDir, previewDir, opts, logger)
		if err != nil {
			logger.Printf("failed to compress %s: %s", path, err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
		}
		rows = append(rows, row)
	}

	if reportPath := context.String("report"); reportPath != "" {
		if err := writeReport(reportPath, rows); err != nil {
			result = multierror.Append(result, err)
		} else {
			logger.Printf("wrote report to %s", reportPath)
		}
	}
	return result
}

func compressFile(
	context *cli.Context,
	path string,
	outputDir string,
	previewDir string,
	opts shrink.Options,
	logger *log.Logger,
) (report.Row, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		err = serrors.ErrIOFailed.Wrap(err)
		return report.NewErrorRow(path, 0, err), err
	}

	result, err := shrink.Compress(context.Context, filepath.Base(path), data, opts)
	if err != nil {
		return report.NewErrorRow(path, len(data), err), err
	}

	outputPath := filepath.Join(outputDir, result.OutputName())
	if err := os.WriteFile(outputPath, result.Payload, 0o644); err != nil {
		err = serrors.ErrIOFailed.Wrap(err)
		return report.NewErrorRow(path, len(data), err), err
	}
	logger.Printf("wrote %s", outputPath)

	fmt.Fprintf(context.App.Writer, "%s (%s compressed!)\n", path, result.Kind)
	fmt.Fprint(context.App.Writer, report.Summary(result))

	if previewDir != "" {
		if err := writePreviews(previewDir, result, logger); err != nil {
			// Previews are a nicety; the compressed file is already written.
			logger.Printf("failed to write previews for %s: %s", path, err)
		}
	}

	row := report.NewRow(result)
	row.File = path
	return row, nil
}

func writeReport(path string, rows []report.Row) error {
	file, err := os.Create(path)
	if err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}
	defer file.Close()
	return report.WriteCSV(file, rows)
}

func listKinds(context *cli.Context) error {
	extensions := shrink.SupportedExtensions()
	kinds := make([]shrink.Kind, 0, len(extensions))
	for kind := range extensions {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		fmt.Fprintf(
			context.App.Writer,
			"%-6s %s -> *_compressed%s\n",
			kind,
			strings.Join(extensions[kind], ", "),
			kind.OutputExtension(),
		)
	}
	return nil
}
