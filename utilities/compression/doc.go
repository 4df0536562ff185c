// Package compression provides the run-length tokenizer shared by the image,
// audio and video encoders.
//
// A sequence of values is split into runs of identical consecutive values.
// Each run is emitted as a (value, count) token, where the count is between 1
// and 255 inclusive. A run longer than 255 values is split into consecutive
// tokens with the same value. For example:
//
//	5 5 5 7 7 2        ->  (5,3) (7,2) (2,1)
//	9 repeated 300x    ->  (9,255) (9,45)
//
// Apart from that split, two adjacent tokens never share a value.
//
// This package only produces tokens; the byte layout of a token stream depends
// on the media type and is handled by the media package.

package compression
