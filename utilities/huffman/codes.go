package huffman

import (
	"cmp"
	"fmt"
	"strings"

	serrors "github.com/dargueta/shrink/errors"
)

// MaxCodeLength is the longest code a [Code] can hold.
const MaxCodeLength = 64

// Code is a variable-length bit string. The code occupies the low Length bits
// of Bits, most significant bit first.
type Code struct {
	Bits   uint64
	Length uint8
}

// String returns the code as a string of '0' and '1' characters.
func (code Code) String() string {
	var builder strings.Builder
	for i := int(code.Length) - 1; i >= 0; i-- {
		if code.Bits&(1<<uint(i)) != 0 {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}
	return builder.String()
}

// HasPrefix reports whether prefix is a prefix of code. A code is a prefix of
// itself.
func (code Code) HasPrefix(prefix Code) bool {
	if prefix.Length > code.Length {
		return false
	}
	return code.Bits>>(code.Length-prefix.Length) == prefix.Bits
}

// CodeTable maps each symbol to its code.
type CodeTable[S cmp.Ordered] map[S]Code

// GenerateCodes walks the tree and returns the code for every leaf. Going to
// the left child appends a 0, going right appends a 1.
//
// A tree made of a single leaf has no branches to walk; that symbol gets the
// one-bit code "0".
func GenerateCodes[S cmp.Ordered](root *Node[S]) (CodeTable[S], error) {
	if root == nil {
		return nil, serrors.ErrEmptyInput.WithMessage("can't generate codes for an empty tree")
	}

	table := make(CodeTable[S])
	if root.IsLeaf() {
		table[root.Symbol] = Code{Bits: 0, Length: 1}
		return table, nil
	}

	err := generateCodes(root, Code{}, table)
	if err != nil {
		return nil, err
	}
	return table, nil
}

func generateCodes[S cmp.Ordered](node *Node[S], current Code, table CodeTable[S]) error {
	if node.IsLeaf() {
		table[node.Symbol] = current
		return nil
	}
	if current.Length == MaxCodeLength {
		return serrors.ErrCodeTooLong.WithMessage(
			fmt.Sprintf("tree is deeper than %d levels", MaxCodeLength))
	}

	left := Code{Bits: current.Bits << 1, Length: current.Length + 1}
	right := Code{Bits: current.Bits<<1 | 1, Length: current.Length + 1}

	if err := generateCodes(node.Left, left, table); err != nil {
		return err
	}
	return generateCodes(node.Right, right, table)
}

// IsPrefixFree reports whether no code in the table is a prefix of another.
func (table CodeTable[S]) IsPrefixFree() bool {
	codes := make([]Code, 0, len(table))
	for _, code := range table {
		codes = append(codes, code)
	}

	for i := range codes {
		for j := range codes {
			if i != j && codes[j].HasPrefix(codes[i]) {
				return false
			}
		}
	}
	return true
}

// EncodedLength returns the number of bits the symbols with the given
// frequencies take up when encoded with this table.
func (table CodeTable[S]) EncodedLength(freqs FrequencyTable[S]) int {
	total := 0
	for symbol, count := range freqs {
		total += count * int(table[symbol].Length)
	}
	return total
}

// String formats the table as `{symbol: code, ...}` in ascending symbol order.
func (table CodeTable[S]) String() string {
	symbols := make(FrequencyTable[S], len(table))
	for symbol := range table {
		symbols[symbol] = 1
	}

	parts := make([]string, 0, len(table))
	for _, symbol := range symbols.Symbols() {
		parts = append(parts, fmt.Sprintf("%v: %s", symbol, table[symbol]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
