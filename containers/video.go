package containers

import (
	"bytes"
	"image"
	"image/draw"
	"image/gif"

	serrors "github.com/dargueta/shrink/errors"
)

// ReadFrames decodes every frame of an animated GIF. Each returned frame is the
// full canvas as it should be displayed at that point, with earlier frames'
// disposal methods applied, not just the rectangle the frame updates.
//
// Other video containers (MP4, MOV, AVI, ...) need a video codec to decode and
// are rejected with [errors.ErrUnsupportedContainer].
func ReadFrames(data []byte) ([]image.Image, error) {
	if !bytes.HasPrefix(data, []byte("GIF8")) {
		return nil, serrors.ErrUnsupportedContainer.WithMessage(
			"only animated GIF video can be decoded")
	}

	animation, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, serrors.ErrUnsupportedContainer.Wrap(err)
	}
	return compositeFrames(animation), nil
}

func compositeFrames(animation *gif.GIF) []image.Image {
	canvasBounds := image.Rect(0, 0, animation.Config.Width, animation.Config.Height)
	if canvasBounds.Empty() {
		for _, frame := range animation.Image {
			canvasBounds = canvasBounds.Union(frame.Bounds())
		}
	}

	canvas := image.NewRGBA(canvasBounds)
	frames := make([]image.Image, 0, len(animation.Image))

	for i, frame := range animation.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(animation.Disposal) {
			disposal = animation.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(canvas))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	return frames
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
