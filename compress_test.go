package shrink_test

import (
	"context"
	"image"
	"testing"

	"github.com/dargueta/shrink"
	shrinktest "github.com/dargueta/shrink/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress__Text(t *testing.T) {
	result, err := shrink.Compress(
		context.Background(), "notes.TXT", []byte("aaaabbc"), shrink.Options{})
	require.NoError(t, err)

	assert.Equal(t, shrink.KindText, result.Kind)
	assert.Equal(t, []byte{0x06, 0xf5, 0x00}, result.Payload)
	assert.Equal(t, 7, result.OriginalSize)
	assert.Equal(t, 3, result.CompressedSize())
	assert.Equal(t, "aaaabbc", result.Text)
	assert.Equal(t, "notes_compressed.bin", result.OutputName())
}

func TestCompress__CSVAndPDFAreRawBytes(t *testing.T) {
	for _, name := range []string{"table.csv", "paper.pdf"} {
		t.Run(
			name,
			func(t *testing.T) {
				result, err := shrink.Compress(
					context.Background(), name, []byte("aaaa"), shrink.Options{})
				require.NoError(t, err)
				assert.Equal(t, []byte{0x04, 0x00}, result.Payload)
			},
		)
	}
}

func TestCompress__Latin1Text(t *testing.T) {
	result, err := shrink.Compress(
		context.Background(), "x.txt", []byte{0xe9, 0xe9}, shrink.Options{})
	require.NoError(t, err)
	assert.Equal(t, "éé", result.Text)
	assert.Equal(t, []byte{0x06, 0x00}, result.Payload)
}

func TestCompress__EmptyText(t *testing.T) {
	_, err := shrink.Compress(context.Background(), "empty.txt", []byte{}, shrink.Options{})
	assert.ErrorIs(t, err, shrink.ErrEmptyInput)
}

func TestCompress__DOCX(t *testing.T) {
	data := shrinktest.BuildDOCX(t, "First", "Second")
	result, err := shrink.Compress(context.Background(), "report.docx", data, shrink.Options{})
	require.NoError(t, err)

	assert.Equal(t, shrink.KindDOCX, result.Kind)
	assert.Equal(t, "First\nSecond", result.Text)
	assert.NotEmpty(t, result.Payload)
	assert.Equal(t, "report_compressed.bin", result.OutputName())
}

func TestCompress__BadDOCX(t *testing.T) {
	_, err := shrink.Compress(
		context.Background(), "broken.docx", []byte("nope"), shrink.Options{})
	assert.ErrorIs(t, err, shrink.ErrUnsupportedContainer)
}

func TestCompress__Image(t *testing.T) {
	data := shrinktest.BuildPNG(t, shrinktest.UniformGray(300, 1, 9))
	result, err := shrink.Compress(context.Background(), "dir/pic.png", data, shrink.Options{})
	require.NoError(t, err)

	assert.Equal(t, shrink.KindImage, result.Kind)
	assert.Equal(t, []byte{9, 255, 9, 45}, result.Payload)
	assert.NotNil(t, result.Image)
	assert.NotNil(t, result.Grayscale)
	assert.Equal(t, "pic_compressed.rle", result.OutputName())
}

func TestCompress__Audio(t *testing.T) {
	data := shrinktest.BuildWAV(t, []int16{100, 100, -50}, 1, 8000)
	result, err := shrink.Compress(context.Background(), "clip.wav", data, shrink.Options{})
	require.NoError(t, err)

	assert.Equal(t, []byte{0x64, 0x00, 0x02, 0xce, 0xff, 0x01}, result.Payload)
	assert.Equal(t, []int16{100, 100, -50}, result.Samples)
	assert.Equal(t, "clip_compressed.rle", result.OutputName())
}

func TestCompress__AudioWithoutSamples(t *testing.T) {
	data := shrinktest.BuildWAV(t, []int16{}, 1, 8000)
	_, err := shrink.Compress(context.Background(), "silence.wav", data, shrink.Options{})
	assert.ErrorIs(t, err, shrink.ErrEmptyInput)
}

func TestCompress__Video(t *testing.T) {
	black := image.NewRGBA(image.Rect(0, 0, 3, 1))
	for i := 3; i < len(black.Pix); i += 4 {
		black.Pix[i] = 0xff
	}
	frames := make([]image.Image, 12)
	for i := range frames {
		frames[i] = black
	}

	data := shrinktest.BuildGIF(t, frames...)
	result, err := shrink.Compress(context.Background(), "anim.gif", data, shrink.Options{})
	require.NoError(t, err)

	expected := []byte{}
	for range frames {
		expected = append(expected, 0, 0, 0, 2, 0, 3)
	}
	assert.Equal(t, expected, result.Payload)
	assert.Len(t, result.ColorFrames, 10)
	assert.Len(t, result.GrayFrames, 10)
	assert.Equal(t, "anim_compressed.rle", result.OutputName())
}

func TestCompress__VideoContainerNotDecodable(t *testing.T) {
	_, err := shrink.Compress(
		context.Background(), "movie.mp4", []byte("\x00\x00\x00\x18ftypmp42"), shrink.Options{})
	assert.ErrorIs(t, err, shrink.ErrUnsupportedContainer)
}

func TestCompress__UnsupportedKind(t *testing.T) {
	_, err := shrink.Compress(context.Background(), "song.mp3", []byte{1}, shrink.Options{})
	assert.ErrorIs(t, err, shrink.ErrUnsupportedKind)
}

func TestReductionRatio(t *testing.T) {
	assert.InDelta(t, 75.0, shrink.ReductionRatio(400, 100), 1e-12)
	assert.InDelta(t, -50.0, shrink.ReductionRatio(2, 3), 1e-12)
	assert.InDelta(t, 0.0, shrink.ReductionRatio(10, 10), 1e-12)
	assert.Equal(t, 100*(1-float64(3)/float64(7)), shrink.ReductionRatio(7, 3))
	assert.Equal(t, 0.0, shrink.ReductionRatio(0, 5))

	result := shrink.Result{OriginalSize: 8, Payload: make([]byte, 2)}
	assert.Equal(t, 75.0, result.ReductionRatio())
}
