package media

import (
	"encoding/binary"
	"fmt"

	serrors "github.com/dargueta/shrink/errors"
)

// ScanVideoFrames walks the frame headers of a payload produced by
// [EncodeVideo] and returns the number of (value, count) tokens in each frame.
// It doesn't look at the tokens themselves.
func ScanVideoFrames(payload []byte) ([]int, error) {
	counts := []int{}
	offset := 0
	for offset < len(payload) {
		if len(payload)-offset < frameHeaderSize {
			return nil, serrors.ErrInvalidArgument.WithMessage(
				fmt.Sprintf("truncated frame header at offset %d", offset))
		}

		elements := int(binary.BigEndian.Uint32(payload[offset:]))
		if elements%2 != 0 {
			return nil, serrors.ErrInvalidArgument.WithMessage(
				fmt.Sprintf(
					"frame %d at offset %d has an odd element count %d",
					len(counts),
					offset,
					elements,
				))
		}

		end := offset + frameHeaderSize + elements
		if end > len(payload) || end < offset {
			return nil, serrors.ErrInvalidArgument.WithMessage(
				fmt.Sprintf(
					"frame %d at offset %d claims %d elements but only %d bytes remain",
					len(counts),
					offset,
					elements,
					len(payload)-offset-frameHeaderSize,
				))
		}

		counts = append(counts, elements/2)
		offset = end
	}
	return counts, nil
}
