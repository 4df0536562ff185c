package media_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"testing"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/dargueta/shrink/media"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grayFromRows(rows ...[]uint8) *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, len(rows[0]), len(rows)))
	for y, row := range rows {
		copy(gray.Pix[y*gray.Stride:], row)
	}
	return gray
}

// alternatingFrame returns a 1-pixel-high frame whose pixels never repeat, so
// it encodes to exactly `width` tokens.
func alternatingFrame(width int) *image.Gray {
	row := make([]uint8, width)
	for i := range row {
		row[i] = uint8(i % 2)
	}
	return grayFromRows(row)
}

func TestGrayscale__Luma(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{B: 255, A: 255})
	img.Set(3, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	gray := media.Grayscale(img)
	assert.Equal(t, []uint8{76, 150, 29, 255}, media.Flatten(gray))
}

func TestGrayscale__IgnoresAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})
	assert.Equal(t, []uint8{255}, media.Flatten(media.Grayscale(img)))
}

func TestGrayscale__GrayPassthrough(t *testing.T) {
	gray := grayFromRows([]uint8{1, 2, 3})
	assert.Same(t, gray, media.Grayscale(gray))
}

func TestFlatten__SubImage(t *testing.T) {
	gray := grayFromRows(
		[]uint8{1, 2, 3, 4},
		[]uint8{5, 6, 7, 8},
		[]uint8{9, 10, 11, 12},
	)
	sub := gray.SubImage(image.Rect(1, 1, 3, 3)).(*image.Gray)
	assert.Equal(t, []uint8{6, 7, 10, 11}, media.Flatten(sub))
}

func TestEncodeGrayscale(t *testing.T) {
	gray := grayFromRows(
		[]uint8{10, 10, 10},
		[]uint8{20, 20, 30},
	)
	output, err := media.EncodeGrayscale(gray)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 3, 20, 2, 30, 1}, output)
}

func TestEncodeGrayscale__LongRunSplit(t *testing.T) {
	gray := grayFromRows(bytes.Repeat([]uint8{9}, 300))
	output, err := media.EncodeGrayscale(gray)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 255, 9, 45}, output)
}

func TestEncodeGrayscale__Empty(t *testing.T) {
	_, err := media.EncodeGrayscale(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, serrors.ErrEmptyInput)
}

func TestEncodeImage__Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for x := 0; x < 3; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	output, err := media.EncodeImage(img)
	require.NoError(t, err)
	assert.Equal(t, []byte{76, 3}, output)
}

func TestEncodeAudio(t *testing.T) {
	output, err := media.EncodeAudio([]int16{100, 100, -50})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x64, 0x00, 0x02, 0xce, 0xff, 0x01}, output)
}

func TestEncodeAudio__TokenLayout(t *testing.T) {
	samples := make([]int16, 0, 600)
	for i := 0; i < 300; i++ {
		samples = append(samples, -32768)
	}
	for i := 0; i < 300; i++ {
		samples = append(samples, 32767)
	}

	output, err := media.EncodeAudio(samples)
	require.NoError(t, err)
	require.Len(t, output, 4*media.AudioTokenSize)

	expected := [][2]int{{-32768, 255}, {-32768, 45}, {32767, 255}, {32767, 45}}
	for i, token := range expected {
		chunk := output[i*media.AudioTokenSize : (i+1)*media.AudioTokenSize]
		assert.EqualValues(t, token[0], int16(binary.LittleEndian.Uint16(chunk)))
		assert.EqualValues(t, token[1], chunk[2])
	}
}

func TestEncodeAudio__Empty(t *testing.T) {
	_, err := media.EncodeAudio(nil)
	assert.ErrorIs(t, err, serrors.ErrEmptyInput)
}

func TestEncodeVideo__Framing(t *testing.T) {
	// 20 tokens flatten to 40 elements, which is also the segment's byte size.
	frames := []image.Image{alternatingFrame(20), alternatingFrame(12)}
	result, err := media.EncodeVideo(context.Background(), frames, media.VideoOptions{})
	require.NoError(t, err)

	payload := result.Payload
	require.Len(t, payload, 4+40+4+24)
	assert.Equal(t, []byte{0, 0, 0, 0x28}, payload[:4])
	assert.Equal(t, []byte{0, 1, 1, 1, 0, 1}, payload[4:10])
	assert.Equal(t, []byte{0, 0, 0, 0x18}, payload[44:48])
	assert.Equal(t, 2, result.FrameCount)
}

func TestEncodeVideo__FrameOrderPreserved(t *testing.T) {
	frames := make([]image.Image, 50)
	for i := range frames {
		frames[i] = grayFromRows(bytes.Repeat([]uint8{uint8(i)}, 5))
	}

	result, err := media.EncodeVideo(
		context.Background(), frames, media.VideoOptions{Workers: 4})
	require.NoError(t, err)
	require.Len(t, result.Payload, 50*6)

	for i := range frames {
		segment := result.Payload[i*6 : (i+1)*6]
		assert.Equal(t, []byte{0, 0, 0, 2, uint8(i), 5}, segment, "frame %d", i)
	}
}

func TestEncodeVideo__Previews(t *testing.T) {
	frames := make([]image.Image, 12)
	for i := range frames {
		img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
		img.Set(0, 0, color.NRGBA{R: uint8(i), A: 255})
		frames[i] = img
	}

	result, err := media.EncodeVideo(context.Background(), frames, media.VideoOptions{})
	require.NoError(t, err)
	require.Len(t, result.ColorPreview, media.DefaultPreviewFrames)
	require.Len(t, result.GrayPreview, media.DefaultPreviewFrames)
	for i := 0; i < media.DefaultPreviewFrames; i++ {
		assert.Same(t, frames[i], result.ColorPreview[i])
		assert.NotNil(t, result.GrayPreview[i])
	}

	result, err = media.EncodeVideo(
		context.Background(), frames[:3], media.VideoOptions{PreviewFrames: 5})
	require.NoError(t, err)
	assert.Len(t, result.ColorPreview, 3)

	result, err = media.EncodeVideo(
		context.Background(), frames, media.VideoOptions{PreviewFrames: -1})
	require.NoError(t, err)
	assert.Empty(t, result.ColorPreview)
	assert.Empty(t, result.GrayPreview)
}

func TestEncodeVideo__Empty(t *testing.T) {
	_, err := media.EncodeVideo(context.Background(), nil, media.VideoOptions{})
	assert.ErrorIs(t, err, serrors.ErrEmptyInput)

	frames := []image.Image{
		alternatingFrame(3),
		image.NewGray(image.Rect(0, 0, 0, 0)),
	}
	_, err = media.EncodeVideo(context.Background(), frames, media.VideoOptions{})
	assert.ErrorIs(t, err, serrors.ErrEmptyInput)
	assert.Contains(t, err.Error(), "frame 1")
}

func TestEncodeVideo__Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := media.EncodeVideo(ctx, []image.Image{alternatingFrame(4)}, media.VideoOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanVideoFrames(t *testing.T) {
	frames := []image.Image{alternatingFrame(40), alternatingFrame(12), alternatingFrame(1)}
	result, err := media.EncodeVideo(context.Background(), frames, media.VideoOptions{})
	require.NoError(t, err)

	counts, err := media.ScanVideoFrames(result.Payload)
	require.NoError(t, err)
	assert.Equal(t, []int{40, 12, 1}, counts)

	_, err = media.ScanVideoFrames(result.Payload[:len(result.Payload)-1])
	assert.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = media.ScanVideoFrames([]byte{0, 0})
	assert.ErrorIs(t, err, serrors.ErrInvalidArgument)

	_, err = media.ScanVideoFrames([]byte{0, 0, 0, 3, 1, 2, 3})
	assert.ErrorIs(t, err, serrors.ErrInvalidArgument)

	counts, err = media.ScanVideoFrames(nil)
	require.NoError(t, err)
	assert.Empty(t, counts)
}
