package huffman

import (
	"cmp"

	serrors "github.com/dargueta/shrink/errors"
)

// Encoder compresses one sequence of symbols. It keeps the intermediate
// results of the last call to [Encoder.Encode] around so callers can inspect
// them; it has no other state. Use a new Encoder for each input.
type Encoder[S cmp.Ordered] struct {
	freqs FrequencyTable[S]
	root  *Node[S]
	codes CodeTable[S]
}

// Encode runs the full pipeline on the sequence and returns the packed bytes.
// An empty sequence is an error.
func (enc *Encoder[S]) Encode(symbols []S) ([]byte, error) {
	if len(symbols) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("nothing to encode")
	}

	freqs := CountFrequencies(symbols)
	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes, err := GenerateCodes(root)
	if err != nil {
		return nil, err
	}
	packed, err := Pack(symbols, codes)
	if err != nil {
		return nil, err
	}

	enc.freqs = freqs
	enc.root = root
	enc.codes = codes
	return packed, nil
}

// Frequencies returns the frequency table from the last successful call to
// Encode, or nil.
func (enc *Encoder[S]) Frequencies() FrequencyTable[S] {
	return enc.freqs
}

// Tree returns the root of the tree from the last successful call to Encode,
// or nil.
func (enc *Encoder[S]) Tree() *Node[S] {
	return enc.root
}

// Codes returns the code table from the last successful call to Encode, or
// nil.
func (enc *Encoder[S]) Codes() CodeTable[S] {
	return enc.codes
}

// Encode is a convenience function that compresses the sequence with a new
// [Encoder].
func Encode[S cmp.Ordered](symbols []S) ([]byte, error) {
	var enc Encoder[S]
	return enc.Encode(symbols)
}

// EncodeBytes compresses raw bytes, treating each byte as a symbol.
func EncodeBytes(data []byte) ([]byte, error) {
	return Encode(data)
}

// EncodeText compresses text, treating each Unicode code point as a symbol.
func EncodeText(text string) ([]byte, error) {
	return Encode([]rune(text))
}
