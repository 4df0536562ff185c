package shrink

import (
	"path/filepath"
	"sort"
	"strings"
)

// Kind identifies how a file is decoded and which encoder compresses it.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindDOCX
	KindCSV
	KindPDF
	KindImage
	KindAudio
	KindVideo
)

var kindNames = map[Kind]string{
	KindUnknown: "unknown",
	KindText:    "text",
	KindDOCX:    "docx",
	KindCSV:     "csv",
	KindPDF:     "pdf",
	KindImage:   "image",
	KindAudio:   "audio",
	KindVideo:   "video",
}

var kindsByExtension = map[string]Kind{
	"txt":  KindText,
	"docx": KindDOCX,
	"csv":  KindCSV,
	"pdf":  KindPDF,
	"png":  KindImage,
	"jpg":  KindImage,
	"jpeg": KindImage,
	"bmp":  KindImage,
	"tif":  KindImage,
	"tiff": KindImage,
	"webp": KindImage,
	"wav":  KindAudio,
	"gif":  KindVideo,
	"mp4":  KindVideo,
	"avi":  KindVideo,
	"mov":  KindVideo,
}

func (kind Kind) String() string {
	name, ok := kindNames[kind]
	if ok {
		return name
	}
	return kindNames[KindUnknown]
}

// UsesHuffman reports whether files of this kind are Huffman coded. All other
// kinds are run-length encoded.
func (kind Kind) UsesHuffman() bool {
	switch kind {
	case KindText, KindDOCX, KindCSV, KindPDF:
		return true
	default:
		return false
	}
}

// OutputExtension is the extension given to compressed files of this kind,
// including the leading dot.
func (kind Kind) OutputExtension() string {
	if kind.UsesHuffman() {
		return ".bin"
	}
	return ".rle"
}

// KindForFilename determines the kind of a file from its extension, ignoring
// case.
func KindForFilename(name string) (Kind, error) {
	extension := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	kind, ok := kindsByExtension[extension]
	if !ok {
		if extension == "" {
			return KindUnknown, ErrUnsupportedKind.WithMessage(
				"file name has no extension: " + name)
		}
		return KindUnknown, ErrUnsupportedKind.WithMessage("." + extension)
	}
	return kind, nil
}

// SupportedExtensions returns the extensions (without dots) of every file type
// that can be compressed, grouped by kind, each group sorted.
func SupportedExtensions() map[Kind][]string {
	extensions := make(map[Kind][]string)
	for extension, kind := range kindsByExtension {
		extensions[kind] = append(extensions[kind], extension)
	}
	for _, group := range extensions {
		sort.Strings(group)
	}
	return extensions
}
