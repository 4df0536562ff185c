// Package huffman compresses symbol streams with static Huffman codes.
//
// Encoding is done in four steps, each of which is exposed on its own:
//
//  1. [CountFrequencies] counts how often each symbol occurs.
//  2. [BuildTree] merges the two least frequent nodes until one root remains.
//  3. [GenerateCodes] walks the tree, appending 0 for a left branch and 1 for
//     a right branch, to get a prefix-free [CodeTable].
//  4. [Pack] concatenates the codes of the input symbols and pads the result
//     to a byte boundary.
//
// The packed output looks like this:
//
//	+-----------+---------------------------+-----------------+
//	| pad count | code bits, MSB first      | pad count zeros |
//	+-----------+---------------------------+-----------------+
//	  8 bits      sum of all code lengths     1 to 8 bits
//
// The pad count is always between 1 and 8. A code stream whose length is
// already a multiple of 8 still gets a full byte of padding.
//
// The code table is not written to the output, so the result can't be decoded
// without it.
//
// Ties between equal frequencies are broken by the heap, so different (equally
// optimal) code tables are possible for the same frequencies. This package
// always seeds the heap in ascending symbol order, so it gives the same output
// for the same input every time.
package huffman
