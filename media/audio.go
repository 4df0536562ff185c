package media

import (
	"encoding/binary"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/utilities/compression"
	"github.com/noxer/bytewriter"
)

// AudioTokenSize is the number of bytes each audio token takes up.
const AudioTokenSize = 3

// EncodeAudio run-length encodes signed 16-bit samples. Each token is written
// as the sample value (2 bytes, little endian, signed) followed by the run
// length (1 byte). Interleaved channels are not separated.
//
// An empty sample sequence is an error.
func EncodeAudio(samples []int16) ([]byte, error) {
	if len(samples) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("audio has no samples")
	}

	elements := compression.FlattenRuns(compression.EncodeRuns(samples))
	output := make([]byte, AudioTokenSize*len(elements)/2)
	writer := bytewriter.New(output)

	for i := 0; i < len(elements); i += 2 {
		err := binary.Write(writer, binary.LittleEndian, int16(elements[i]))
		if err == nil {
			err = writer.WriteByte(byte(elements[i+1]))
		}
		if err != nil {
			return nil, serrors.ErrIOFailed.Wrap(err)
		}
	}
	return output, nil
}
