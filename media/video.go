package media

import (
	"context"
	"encoding/binary"
	"fmt"
	"image"
	"runtime"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/utilities/compression"
	"github.com/noxer/bytewriter"
	"golang.org/x/sync/errgroup"
)

// DefaultPreviewFrames is the number of frames kept for previews when
// [VideoOptions.PreviewFrames] is zero.
const DefaultPreviewFrames = 10

// frameHeaderSize is the size of the element count in front of every frame.
const frameHeaderSize = 4

type VideoOptions struct {
	// Workers is the maximum number of frames encoded at the same time. Zero
	// means one per CPU.
	Workers int
	// PreviewFrames is the number of leading frames copied into the result for
	// previews. Zero means [DefaultPreviewFrames]; negative disables previews.
	PreviewFrames int
}

func (opts VideoOptions) workers() int {
	if opts.Workers > 0 {
		return opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (opts VideoOptions) previewFrames() int {
	if opts.PreviewFrames == 0 {
		return DefaultPreviewFrames
	}
	if opts.PreviewFrames < 0 {
		return 0
	}
	return opts.PreviewFrames
}

// VideoResult is the output of [EncodeVideo].
type VideoResult struct {
	// Payload is the compressed video.
	Payload []byte
	// FrameCount is the number of frames in Payload.
	FrameCount int
	// ColorPreview holds the first few frames as they were given.
	ColorPreview []image.Image
	// GrayPreview holds the grayscale versions of the frames in ColorPreview.
	GrayPreview []*image.Gray
}

// EncodeVideo run-length encodes each frame separately and concatenates the
// results in frame order. Each frame is written as a 4-byte big-endian count of
// the flattened token elements in the frame (two per [value][count] pair, so
// also its length in bytes), followed by the pairs themselves.
//
// Frames are independent of each other, so they're encoded in parallel. Having
// no frames, or a frame with no pixels, is an error.
func EncodeVideo(ctx context.Context, frames []image.Image, opts VideoOptions) (*VideoResult, error) {
	if len(frames) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("video has no frames")
	}

	previewCount := min(opts.previewFrames(), len(frames))
	result := &VideoResult{
		FrameCount:   len(frames),
		ColorPreview: make([]image.Image, previewCount),
		GrayPreview:  make([]*image.Gray, previewCount),
	}
	segments := make([][]byte, len(frames))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.workers())

	for i := range frames {
		i := i
		group.Go(func() error {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			default:
			}

			gray := Grayscale(frames[i])
			segment, err := encodeFrameSegment(gray)
			if err != nil {
				return fmt.Errorf("frame %d: %w", i, err)
			}
			segments[i] = segment

			if i < previewCount {
				result.ColorPreview[i] = frames[i]
				result.GrayPreview[i] = gray
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	totalSize := 0
	for _, segment := range segments {
		totalSize += len(segment)
	}
	result.Payload = make([]byte, 0, totalSize)
	for _, segment := range segments {
		result.Payload = append(result.Payload, segment...)
	}
	return result, nil
}

// encodeFrameSegment encodes a single frame, including its element count.
func encodeFrameSegment(gray *image.Gray) ([]byte, error) {
	samples := Flatten(gray)
	if len(samples) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("frame has no pixels")
	}

	runs := compression.EncodeRuns(samples)
	tokens, err := serializeByteRuns(runs)
	if err != nil {
		return nil, err
	}

	segment := make([]byte, frameHeaderSize+len(tokens))
	writer := bytewriter.New(segment)
	err = binary.Write(writer, binary.BigEndian, uint32(len(tokens)))
	if err == nil {
		_, err = writer.Write(tokens)
	}
	if err != nil {
		return nil, serrors.ErrIOFailed.Wrap(err)
	}
	return segment, nil
}
