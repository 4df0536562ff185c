// Package preview renders the artifacts shown next to a compression result:
// text excerpts, grayscale images, animated GIFs of video frames and scatter
// plots of audio samples.
package preview

import (
	"unicode/utf8"

	"github.com/dargueta/shrink/containers"
)

// DefaultTextLimit is the number of characters shown in a text preview.
const DefaultTextLimit = 2000

// Text returns at most `limit` characters from the start of the text.
func Text(text string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	count := 0
	for offset := range text {
		if count == limit {
			return text[:offset]
		}
		count++
	}
	return text
}

// CompressedText shows compressed bytes as text, one character per byte, with
// at most `limit` characters.
func CompressedText(payload []byte, limit int) string {
	if limit >= 0 && len(payload) > limit {
		payload = payload[:limit]
	}
	return containers.Latin1(payload)
}
