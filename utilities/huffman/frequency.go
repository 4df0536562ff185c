package huffman

import (
	"cmp"
	"slices"
)

// FrequencyTable maps each distinct symbol to the number of times it occurs.
type FrequencyTable[S cmp.Ordered] map[S]int

// CountFrequencies counts the occurrences of each symbol in the sequence. An
// empty sequence gives an empty table.
func CountFrequencies[S cmp.Ordered](symbols []S) FrequencyTable[S] {
	table := make(FrequencyTable[S])
	for _, symbol := range symbols {
		table[symbol]++
	}
	return table
}

// Symbols returns the distinct symbols in the table in ascending order.
func (table FrequencyTable[S]) Symbols() []S {
	symbols := make([]S, 0, len(table))
	for symbol := range table {
		symbols = append(symbols, symbol)
	}
	slices.Sort(symbols)
	return symbols
}

// Total returns the length of the sequence the table was built from.
func (table FrequencyTable[S]) Total() int {
	total := 0
	for _, count := range table {
		total += count
	}
	return total
}
