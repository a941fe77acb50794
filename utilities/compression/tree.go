package compression

import (
	"container/heap"
)

// Node is a node in a Huffman tree. A node is either a leaf, carrying a byte
// value, or an internal node that exclusively owns exactly two children. Weight
// is the total frequency of every leaf in the subtree.
type Node struct {
	Weight uint64
	// Symbol is the byte value of a leaf. It's meaningless for internal nodes.
	Symbol byte
	Left   *Node
	Right  *Node

	// sequence is the order in which internal nodes were created, starting at 1.
	// Leaves have a sequence of 0.
	sequence int
}

// IsLeaf returns true if the node has no children.
func (node *Node) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// nodeQueue is a min-heap of tree nodes. The order is total, so the tree built
// from a given frequency table is always the same:
//
//  1. Lower weight comes first.
//  2. If weights are equal, leaves come before internal nodes.
//  3. Between two leaves, the higher byte value comes first.
//  4. Between two internal nodes, the one created earlier comes first.
//
// Rules 1-3 match the trees built by the learning_huffman tool, so
// artifacts it wrote decode correctly. That tool left rule 4 undefined.
type nodeQueue []*Node

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}

	aLeaf, bLeaf := a.IsLeaf(), b.IsLeaf()
	switch {
	case aLeaf && bLeaf:
		return a.Symbol > b.Symbol
	case aLeaf != bLeaf:
		return aLeaf
	}
	return a.sequence < b.sequence
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) {
	*q = append(*q, x.(*Node))
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// BuildTree builds a Huffman tree from a frequency table and returns its root.
// If no byte value has a non-zero count there's nothing to encode, and the
// return value is nil. If exactly one byte value is present, the root is a
// lone leaf.
func BuildTree(table *FrequencyTable) *Node {
	queue := make(nodeQueue, 0, table.NumSymbols())
	table.forEachSymbol(func(symbol byte, count uint64) {
		queue = append(queue, &Node{Weight: count, Symbol: symbol})
	})
	if len(queue) == 0 {
		return nil
	}

	heap.Init(&queue)
	sequence := 0
	for queue.Len() > 1 {
		left := heap.Pop(&queue).(*Node)
		right := heap.Pop(&queue).(*Node)
		sequence++
		heap.Push(
			&queue,
			&Node{
				Weight:   left.Weight + right.Weight,
				Left:     left,
				Right:    right,
				sequence: sequence,
			},
		)
	}
	return heap.Pop(&queue).(*Node)
}
