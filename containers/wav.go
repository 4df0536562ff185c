package containers

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	serrors "github.com/dargueta/shrink/errors"
)

const (
	wavFormatPCM        = 0x0001
	wavFormatExtensible = 0xfffe
)

// WAVInfo describes the sample format of a WAV file.
type WAVInfo struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	BitsPerSample uint16
	// Frames is the number of sample frames, i.e. samples per channel.
	Frames int
}

type wavFormatChunk struct {
	Format        uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// ReadWAV returns the samples of a 16-bit PCM WAV file. Samples of different
// channels stay interleaved, as they're stored in the file.
//
// A data chunk that claims to be bigger than the file is truncated to the data
// that's actually there. A trailing partial frame is dropped.
func ReadWAV(data []byte) ([]int16, WAVInfo, error) {
	reader := bytes.NewReader(data)
	info := WAVInfo{}

	var riffHeader struct {
		ID   [4]byte
		Size uint32
		Form [4]byte
	}
	if err := binary.Read(reader, binary.LittleEndian, &riffHeader); err != nil {
		return nil, info, wavError(err)
	}
	if string(riffHeader.ID[:]) != "RIFF" || string(riffHeader.Form[:]) != "WAVE" {
		return nil, info, serrors.ErrUnsupportedContainer.WithMessage("not a RIFF/WAVE file")
	}

	haveFormat := false
	for {
		var chunkHeader struct {
			ID   [4]byte
			Size uint32
		}
		err := binary.Read(reader, binary.LittleEndian, &chunkHeader)
		if errors.Is(err, io.EOF) {
			return nil, info, serrors.ErrUnsupportedContainer.WithMessage("no data chunk")
		} else if err != nil {
			return nil, info, wavError(err)
		}

		chunkStart, err := reader.Seek(0, io.SeekCurrent)
		if err != nil {
			return nil, info, wavError(err)
		}

		switch string(chunkHeader.ID[:]) {
		case "fmt ":
			var format wavFormatChunk
			if err := binary.Read(reader, binary.LittleEndian, &format); err != nil {
				return nil, info, wavError(err)
			}
			if format.Format != wavFormatPCM && format.Format != wavFormatExtensible {
				return nil, info, serrors.ErrUnsupportedContainer.WithMessage(
					fmt.Sprintf("unsupported WAV format 0x%04x", format.Format))
			}
			if format.BitsPerSample != 16 {
				return nil, info, serrors.ErrUnsupportedContainer.WithMessage(
					fmt.Sprintf("only 16-bit samples are supported, got %d", format.BitsPerSample))
			}
			if format.Channels == 0 {
				return nil, info, serrors.ErrUnsupportedContainer.WithMessage("WAV has no channels")
			}
			info.Format = format.Format
			info.Channels = format.Channels
			info.SampleRate = format.SampleRate
			info.BitsPerSample = format.BitsPerSample
			haveFormat = true

		case "data":
			if !haveFormat {
				return nil, info, serrors.ErrUnsupportedContainer.WithMessage(
					"data chunk comes before fmt chunk")
			}
			available := int64(reader.Len())
			size := min(int64(chunkHeader.Size), available)
			frameSize := int64(info.Channels) * 2
			info.Frames = int(size / frameSize)

			samples := make([]int16, info.Frames*int(info.Channels))
			if len(samples) == 0 {
				return samples, info, nil
			}
			if err := binary.Read(reader, binary.LittleEndian, samples); err != nil {
				return nil, info, wavError(err)
			}
			return samples, info, nil
		}

		// Chunks are padded to an even number of bytes.
		next := chunkStart + int64(chunkHeader.Size) + int64(chunkHeader.Size&1)
		if _, err := reader.Seek(next, io.SeekStart); err != nil {
			return nil, info, wavError(err)
		}
	}
}

func wavError(err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return serrors.ErrUnsupportedContainer.Wrap(fmt.Errorf("malformed WAV file: %w", err))
}
