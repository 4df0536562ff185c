package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dargueta/shrink"
	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/preview"
	"github.com/hashicorp/go-multierror"
)

// writePreviews writes whichever previews make sense for the kind of file that
// was compressed. All previews are attempted even if one fails.
func writePreviews(dir string, result *shrink.Result, logger *log.Logger) error {
	stem := strings.TrimSuffix(filepath.Base(result.Name), filepath.Ext(result.Name))
	var errs error

	write := func(suffix string, render func(io.Writer) error) {
		path := filepath.Join(dir, stem+suffix)
		if err := writePreviewFile(path, render); err != nil {
			errs = multierror.Append(errs, err)
			return
		}
		logger.Printf("wrote preview %s", path)
	}

	switch result.Kind {
	case shrink.KindText, shrink.KindCSV, shrink.KindPDF, shrink.KindDOCX:
		write("_original.txt", func(w io.Writer) error {
			_, err := io.WriteString(w, preview.Text(result.Text, preview.DefaultTextLimit))
			return err
		})
		write("_compressed_preview.txt", func(w io.Writer) error {
			_, err := io.WriteString(
				w, preview.CompressedText(result.Payload, preview.DefaultTextLimit))
			return err
		})

	case shrink.KindImage:
		write("_original.png", func(w io.Writer) error {
			return preview.WritePNG(w, result.Image)
		})
		write("_grayscale.png", func(w io.Writer) error {
			return preview.WritePNG(w, result.Grayscale)
		})

	case shrink.KindAudio:
		write("_original.svg", func(w io.Writer) error {
			return preview.AudioScatter(
				w, result.Samples, preview.DefaultSampleLimit, "Original Audio")
		})
		write("_compressed.svg", func(w io.Writer) error {
			return preview.AudioTokenScatter(
				w, result.Payload, preview.DefaultTokenLimit, "Compressed Audio")
		})

	case shrink.KindVideo:
		if len(result.ColorFrames) == 0 {
			break
		}
		write("_original.gif", func(w io.Writer) error {
			return preview.WriteAnimatedGIF(w, result.ColorFrames)
		})
		write("_grayscale.gif", func(w io.Writer) error {
			return preview.WriteAnimatedGIF(w, preview.GrayImages(result.GrayFrames))
		})
	}
	return errs
}

func writePreviewFile(path string, render func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}

	renderErr := render(file)
	closeErr := file.Close()
	if renderErr != nil {
		return renderErr
	}
	if closeErr != nil {
		return serrors.ErrIOFailed.Wrap(closeErr)
	}
	return nil
}
