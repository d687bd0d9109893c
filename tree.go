package huffman

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Node is one node of a Huffman tree.
//
// A leaf has a valid Symbol and no children.  An internal node has Symbol ==
// InvalidSymbol, exactly two children, and a Freq equal to the sum of its
// children's Freq (saturating at math.MaxUint64).  Every child belongs to
// exactly one parent.
type Node struct {
	Symbol Symbol
	Freq   uint64
	Left   *Node
	Right  *Node
}

// IsLeaf returns true iff this node has no children.
func (node *Node) IsLeaf() bool {
	return node.Left == nil && node.Right == nil
}

// Leaves returns the number of leaves in the subtree rooted at this node.
func (node *Node) Leaves() int {
	if node == nil {
		return 0
	}
	if node.IsLeaf() {
		return 1
	}
	return node.Left.Leaves() + node.Right.Leaves()
}

// Depth returns the number of edges on the longest path from this node to a
// leaf.  A lone leaf has depth 0.
func (node *Node) Depth() int {
	if node == nil || node.IsLeaf() {
		return 0
	}
	l, r := node.Left.Depth(), node.Right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// String returns a short human-readable description of the tree.
func (node *Node) String() string {
	if node == nil {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d leaves, weight %d, depth %d)", node.Leaves(), node.Freq, node.Depth())
}

var _ fmt.Stringer = (*Node)(nil)

// BuildTree builds a Huffman tree from a frequency table and returns its root.
//
// Nodes are merged lowest frequency first.  Ties are broken by creation
// order: leaves are created in ascending Symbol order, and every merged node
// is newer than all nodes that exist when it is created.  The node popped
// first becomes the left child.  The resulting tree is therefore fully
// determined by freq.
//
// If freq holds a single symbol, the root is a single leaf.
func BuildTree(freq Frequencies) (*Node, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := freq.Symbols()
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(symbols))}
	for _, symbol := range symbols {
		n := freq[symbol]
		if n == 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroFrequency, symbol)
		}
		h.list = append(h.list, nodeAndSeq{
			node: &Node{Symbol: symbol, Freq: n},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)

		// Compute freqSum using saturating addition
		freqSum := a.node.Freq + b.node.Freq
		if freqSum < a.node.Freq {
			freqSum = math.MaxUint64
		}

		parent := &Node{
			Symbol: InvalidSymbol,
			Freq:   freqSum,
			Left:   a.node,
			Right:  b.node,
		}
		heap.Push(&h, nodeAndSeq{node: parent, seq: h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	log.Debugf("built %v", root)
	return root, nil
}

// DeriveCodes walks the tree depth-first and returns the code for every leaf:
// '0' for each step to a left child and '1' for each step to a right child.
//
// A root that is itself a leaf has no edges to walk; its symbol is assigned
// the code "0" so that every symbol still costs one bit.  A nil root yields
// an empty table.
func DeriveCodes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.IsLeaf() {
		codes[root.Symbol] = "0"
		return codes
	}

	path := make([]byte, 0, root.Depth())
	var walk func(node *Node)
	walk = func(node *Node) {
		if node.IsLeaf() {
			assert.Assertf(node.Symbol.IsValid(), "leaf with invalid symbol %d", int32(node.Symbol))
			codes[node.Symbol] = string(path)
			return
		}
		assert.Assertf(node.Left != nil && node.Right != nil, "internal node with only one child")

		path = append(path, '0')
		walk(node.Left)
		path[len(path)-1] = '1'
		walk(node.Right)
		path = path[:len(path)-1]
	}
	walk(root)
	return codes
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
