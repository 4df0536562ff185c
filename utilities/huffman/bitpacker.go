package huffman

import (
	"bytes"
	"cmp"
	"fmt"

	serrors "github.com/dargueta/shrink/errors"
	"github.com/icza/bitio"
)

// PaddingFor returns the number of zero bits appended to a code stream of the
// given length. It's always in [1, 8].
func PaddingFor(bitLength int) int {
	return 8 - bitLength%8
}

// Pack writes the codes for the symbols, in order, into a padded byte stream.
// The first byte of the output holds the number of zero bits appended at the
// end to make the code stream end on a byte boundary.
//
// Every symbol must have a code in the table.
func Pack[S cmp.Ordered](symbols []S, table CodeTable[S]) ([]byte, error) {
	bitLength := 0
	for i, symbol := range symbols {
		code, ok := table[symbol]
		if !ok {
			return nil, serrors.ErrMissingCode.WithMessage(
				fmt.Sprintf("symbol %v at index %d", symbol, i))
		}
		bitLength += int(code.Length)
	}

	padding := PaddingFor(bitLength)
	output := bytes.NewBuffer(make([]byte, 0, 1+(bitLength+padding)/8))
	writer := bitio.NewWriter(output)

	writer.TryWriteByte(byte(padding))
	for _, symbol := range symbols {
		code := table[symbol]
		writer.TryWriteBits(code.Bits, code.Length)
	}
	writer.TryWriteBits(0, uint8(padding))
	if writer.TryError != nil {
		return nil, serrors.ErrIOFailed.Wrap(writer.TryError)
	}

	// Close() would pad to a byte boundary itself, but the padding we wrote
	// already got us there.
	if err := writer.Close(); err != nil {
		return nil, serrors.ErrIOFailed.Wrap(err)
	}
	return output.Bytes(), nil
}
