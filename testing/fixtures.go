// Package testing builds in-memory input files for tests.
//
// Every function here fails the test immediately if it can't produce its
// output, so callers never need to check for errors.
package testing

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

const wavHeaderSize = 44

// BuildWAV creates a 16-bit PCM WAV file holding the given (interleaved)
// samples.
//
// The header is written with placeholder sizes first and patched afterwards,
// the same way a streaming writer that doesn't know the length up front would.
func BuildWAV(t *testing.T, samples []int16, channels uint16, sampleRate uint32) []byte {
	backing := make([]byte, wavHeaderSize+2*len(samples))
	stream := bytesextra.NewReadWriteSeeker(backing)

	header := []any{
		[]byte("RIFF"), uint32(0), []byte("WAVE"),
		[]byte("fmt "), uint32(16),
		uint16(1), channels, sampleRate,
		sampleRate * uint32(channels) * 2, channels * 2, uint16(16),
		[]byte("data"), uint32(0),
	}
	for _, field := range header {
		require.NoError(t, binary.Write(stream, binary.LittleEndian, field))
	}
	// Writing nothing at the end of the buffer still reports io.EOF.
	if len(samples) > 0 {
		require.NoError(t, binary.Write(stream, binary.LittleEndian, samples))
	}

	patchUint32(t, stream, 4, uint32(len(backing)-8))
	patchUint32(t, stream, 40, uint32(2*len(samples)))
	return backing
}

func patchUint32(t *testing.T, stream io.WriteSeeker, offset int64, value uint32) {
	_, err := stream.Seek(offset, io.SeekStart)
	require.NoErrorf(t, err, "failed to seek to offset %d", offset)
	require.NoError(t, binary.Write(stream, binary.LittleEndian, value))
}

// BuildDOCX creates a minimal DOCX archive with one paragraph per string.
func BuildDOCX(t *testing.T, paragraphs ...string) []byte {
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	body.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, paragraph := range paragraphs {
		fmt.Fprintf(&body, `<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`, paragraph)
	}
	body.WriteString(`</w:body></w:document>`)

	return BuildZip(t, map[string][]byte{
		"[Content_Types].xml": []byte(`<?xml version="1.0"?><Types/>`),
		"word/document.xml":   body.Bytes(),
	})
}

// BuildZip creates a ZIP archive from a map of member names to contents.
func BuildZip(t *testing.T, members map[string][]byte) []byte {
	var archive bytes.Buffer
	writer := zip.NewWriter(&archive)
	for name, contents := range members {
		member, err := writer.Create(name)
		require.NoErrorf(t, err, "failed to create archive member %q", name)
		_, err = member.Write(contents)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return archive.Bytes()
}

// BuildGIF creates an animated GIF from the frames. Frames are quantized to
// the Plan 9 palette.
func BuildGIF(t *testing.T, frames ...image.Image) []byte {
	animation := &gif.GIF{}
	for _, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.Draw(paletted, frame.Bounds(), frame, frame.Bounds().Min, draw.Src)
		animation.Image = append(animation.Image, paletted)
		animation.Delay = append(animation.Delay, 10)
	}

	var output bytes.Buffer
	require.NoError(t, gif.EncodeAll(&output, animation))
	return output.Bytes()
}

// BuildPNG encodes the image as a PNG.
func BuildPNG(t *testing.T, img image.Image) []byte {
	var output bytes.Buffer
	require.NoError(t, png.Encode(&output, img))
	return output.Bytes()
}

// UniformGray returns a grayscale image of the given size with every pixel set
// to the same value.
func UniformGray(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}
