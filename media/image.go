package media

import (
	"image"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/utilities/compression"
	"github.com/noxer/bytewriter"
)

// EncodeImage converts the image to grayscale and run-length encodes it. See
// [EncodeGrayscale].
func EncodeImage(img image.Image) ([]byte, error) {
	return EncodeGrayscale(Grayscale(img))
}

// EncodeGrayscale run-length encodes the pixels of the image in row-major
// order. Each token is written as two bytes, the pixel value followed by the
// run length. An image with no pixels is an error.
func EncodeGrayscale(gray *image.Gray) ([]byte, error) {
	samples := Flatten(gray)
	if len(samples) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("image has no pixels")
	}
	return serializeByteRuns(compression.EncodeRuns(samples))
}

// serializeByteRuns writes the flattened runs, one byte per element, so each
// run becomes [value][count].
func serializeByteRuns(runs []compression.Run[uint8]) ([]byte, error) {
	elements := compression.FlattenRuns(runs)
	output := make([]byte, len(elements))
	writer := bytewriter.New(output)

	for _, element := range elements {
		if err := writer.WriteByte(byte(element)); err != nil {
			return nil, serrors.ErrIOFailed.Wrap(err)
		}
	}
	return output, nil
}
