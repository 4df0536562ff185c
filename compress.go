package shrink

import (
	"context"
	"image"
	"path/filepath"
	"strings"

	"github.com/dargueta/shrink/containers"
	"github.com/dargueta/shrink/media"
	"github.com/dargueta/shrink/utilities/huffman"
)

// Options controls [Compress]. The zero value is ready to use.
type Options struct {
	// Workers caps the number of video frames encoded concurrently. Zero means
	// one per CPU.
	Workers int
	// PreviewFrames is the number of video frames kept for previews. Zero means
	// [media.DefaultPreviewFrames]; negative disables them.
	PreviewFrames int
}

// Result holds a compressed file along with what's needed to preview the
// original. Only the preview fields relevant to the file's kind are set.
type Result struct {
	// Name is the name of the original file.
	Name string
	Kind Kind
	// OriginalSize is the size of the file as uploaded, before any container
	// decoding.
	OriginalSize int
	// Payload is the compressed data.
	Payload []byte

	// Text is a readable version of text-like files (text, CSV, PDF, DOCX).
	Text string
	// Image is the decoded image of an image file.
	Image image.Image
	// Grayscale is the grayscale version of Image that was compressed.
	Grayscale *image.Gray
	// Samples are the decoded samples of an audio file.
	Samples []int16
	// ColorFrames and GrayFrames are the first few frames of a video.
	ColorFrames []image.Image
	GrayFrames  []*image.Gray
}

// CompressedSize is the length of the payload in bytes.
func (result *Result) CompressedSize() int {
	return len(result.Payload)
}

// ReductionRatio is the percentage by which the file shrank. See
// [ReductionRatio].
func (result *Result) ReductionRatio() float64 {
	return ReductionRatio(result.OriginalSize, result.CompressedSize())
}

// OutputName returns the file name the payload should be saved under:
// `<stem>_compressed.bin` for Huffman-coded kinds, `<stem>_compressed.rle` for
// the rest.
func (result *Result) OutputName() string {
	base := filepath.Base(result.Name)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return stem + "_compressed" + result.Kind.OutputExtension()
}

// ReductionRatio returns 100 * (1 - compressed/original). It's negative if the
// output is bigger than the input. An original size of zero gives zero.
func ReductionRatio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return 100 * (1 - float64(compressed)/float64(original))
}

// Compress decodes a file according to the kind its name implies and
// compresses it. The context is only checked while encoding video.
func Compress(ctx context.Context, name string, data []byte, opts Options) (*Result, error) {
	kind, err := KindForFilename(name)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Name:         name,
		Kind:         kind,
		OriginalSize: len(data),
	}

	switch kind {
	case KindText, KindCSV, KindPDF:
		err = compressBytes(result, data)
	case KindDOCX:
		err = compressDOCX(result, data)
	case KindImage:
		err = compressImage(result, data)
	case KindAudio:
		err = compressAudio(result, data)
	case KindVideo:
		err = compressVideo(ctx, result, data, opts)
	default:
		err = ErrUnsupportedKind.WithMessage(kind.String())
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}

func compressBytes(result *Result, data []byte) error {
	symbols := containers.ReadText(data)
	payload, err := huffman.EncodeBytes(symbols)
	if err != nil {
		return err
	}
	result.Payload = payload
	result.Text = containers.Latin1(symbols)
	return nil
}

func compressDOCX(result *Result, data []byte) error {
	xmlText, err := containers.ReadDOCX(data)
	if err != nil {
		return err
	}
	payload, err := huffman.EncodeText(xmlText)
	if err != nil {
		return err
	}
	result.Payload = payload

	// The archive already opened fine, so failing to parse the XML only costs
	// us the preview.
	paragraphs, err := containers.DOCXParagraphs(data)
	if err == nil {
		result.Text = strings.Join(paragraphs, "\n")
	}
	return nil
}

func compressImage(result *Result, data []byte) error {
	img, _, err := containers.ReadImage(data)
	if err != nil {
		return err
	}
	gray := media.Grayscale(img)
	payload, err := media.EncodeGrayscale(gray)
	if err != nil {
		return err
	}
	result.Payload = payload
	result.Image = img
	result.Grayscale = gray
	return nil
}

func compressAudio(result *Result, data []byte) error {
	samples, _, err := containers.ReadWAV(data)
	if err != nil {
		return err
	}
	payload, err := media.EncodeAudio(samples)
	if err != nil {
		return err
	}
	result.Payload = payload
	result.Samples = samples
	return nil
}

func compressVideo(ctx context.Context, result *Result, data []byte, opts Options) error {
	frames, err := containers.ReadFrames(data)
	if err != nil {
		return err
	}
	video, err := media.EncodeVideo(
		ctx,
		frames,
		media.VideoOptions{Workers: opts.Workers, PreviewFrames: opts.PreviewFrames},
	)
	if err != nil {
		return err
	}
	result.Payload = video.Payload
	result.ColorFrames = video.ColorPreview
	result.GrayFrames = video.GrayPreview
	return nil
}
