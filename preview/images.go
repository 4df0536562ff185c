package preview

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"

	serrors "github.com/dargueta/shrink/errors"
)

// FrameDelay is how long each frame of an animated preview is shown, in
// hundredths of a second.
const FrameDelay = 10

// WritePNG writes the image as a PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}
	return nil
}

// WriteAnimatedGIF writes the frames as a looping GIF animation. Frames are
// dithered to the Plan 9 palette.
func WriteAnimatedGIF(w io.Writer, frames []image.Image) error {
	if len(frames) == 0 {
		return serrors.ErrEmptyInput.WithMessage("no frames to animate")
	}

	animation := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		bounds := frame.Bounds()
		paletted := image.NewPaletted(bounds, palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, bounds, frame, bounds.Min)

		animation.Image = append(animation.Image, paletted)
		animation.Delay = append(animation.Delay, FrameDelay)
	}

	if err := gif.EncodeAll(w, animation); err != nil {
		return serrors.ErrIOFailed.Wrap(err)
	}
	return nil
}

// GrayImages converts a slice of grayscale images into a slice of the image
// interface, for passing to [WriteAnimatedGIF].
func GrayImages(frames []*image.Gray) []image.Image {
	images := make([]image.Image, len(frames))
	for i, frame := range frames {
		images[i] = frame
	}
	return images
}
