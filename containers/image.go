package containers

import (
	"bytes"
	"image"

	// Formats the standard library decodes.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	serrors "github.com/dargueta/shrink/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ReadImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image. It returns the
// image and the name of the format it was decoded from. Only the first frame of
// an animated GIF is returned; use [ReadFrames] for all of them.
func ReadImage(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", serrors.ErrUnsupportedContainer.Wrap(err)
	}
	return img, format, nil
}
