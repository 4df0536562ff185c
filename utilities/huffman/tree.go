package huffman

import (
	"cmp"
	"container/heap"

	serrors "github.com/dargueta/shrink/errors"
)

// Node is either a leaf holding a symbol, or an internal node with exactly two
// children whose frequency is the sum of theirs.
type Node[S cmp.Ordered] struct {
	Symbol      S
	Freq        int
	Left, Right *Node[S]
}

// IsLeaf reports whether the node has no children.
func (node *Node[S]) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// LeafCount returns the number of leaves under (and including) this node.
func (node *Node[S]) LeafCount() int {
	if node.IsLeaf() {
		return 1
	}
	return node.Left.LeafCount() + node.Right.LeafCount()
}

// nodeQueue is a min-heap of nodes ordered only by frequency.
type nodeQueue[S cmp.Ordered] []*Node[S]

func (pq nodeQueue[S]) Len() int           { return len(pq) }
func (pq nodeQueue[S]) Less(i, j int) bool { return pq[i].Freq < pq[j].Freq }
func (pq nodeQueue[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodeQueue[S]) Push(x any)        { *pq = append(*pq, x.(*Node[S])) }
func (pq *nodeQueue[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

// BuildTree builds a Huffman tree from the frequency table. The first of the
// two nodes taken off the heap becomes the left child of their parent.
//
// A table with one symbol gives a tree consisting of a single leaf. An empty
// table is an error.
func BuildTree[S cmp.Ordered](freqs FrequencyTable[S]) (*Node[S], error) {
	if len(freqs) == 0 {
		return nil, serrors.ErrEmptyInput.WithMessage("can't build a tree with no symbols")
	}

	pq := make(nodeQueue[S], 0, len(freqs))
	for _, symbol := range freqs.Symbols() {
		freq := freqs[symbol]
		if freq <= 0 {
			return nil, serrors.ErrInvalidArgument.WithMessage(
				"symbol frequencies must be positive")
		}
		pq = append(pq, &Node[S]{Symbol: symbol, Freq: freq})
	}
	heap.Init(&pq)

	for pq.Len() > 1 {
		left := heap.Pop(&pq).(*Node[S])
		right := heap.Pop(&pq).(*Node[S])

		parent := &Node[S]{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		}
		heap.Push(&pq, parent)
	}
	return heap.Pop(&pq).(*Node[S]), nil
}
