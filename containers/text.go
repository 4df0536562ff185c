package containers

import (
	"strings"
)

// ReadText returns the bytes of a plain text, CSV or PDF file. These formats
// are compressed byte for byte, so there's nothing to decode; the function
// exists so that every kind of file goes through this package.
func ReadText(data []byte) []byte {
	return data
}

// Latin1 decodes bytes as ISO 8859-1, mapping every byte to the code point
// with the same value. Unlike UTF-8 decoding this never fails, which makes it
// safe for previewing arbitrary binary data.
func Latin1(data []byte) string {
	var builder strings.Builder
	builder.Grow(len(data))
	for _, b := range data {
		builder.WriteRune(rune(b))
	}
	return builder.String()
}
