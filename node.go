package freqtrie

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// emptyNode is the canonical empty node, shared by every empty trie.
var emptyNode = &node{}

// node is an immutable trie node.
//
// The outgoing edges are stored twice: keys/children in ascending order for
// merging and enumeration, tkeys/tchildren in complete binary tree order
// for descent. Both describe the same set of (character, child) pairs.
type node struct {
	freq     int
	tfreq    int
	terminal bool
	value    Value
	count    int // terminal nodes in this subtree

	keys     []rune
	children []*node

	tkeys     []rune
	tchildren []*node
}

// newNode builds a node from ascending, duplicate-free edges and derives the
// tree layout from them.
func newNode(freq, tfreq int, terminal bool, keys []rune, children []*node, value Value) (*node, error) {
	if err := checkEdges(keys, children); err != nil {
		return nil, err
	}
	tkeys, tchildren := completeBinaryTree(keys, children)
	return assemble(freq, tfreq, terminal, keys, children, tkeys, tchildren, value)
}

// newNodeLayout builds a node from both layouts at once. The tree layout must
// be a permutation of the sorted one that keeps every child on its character.
func newNodeLayout(freq, tfreq int, terminal bool, keys []rune, children []*node, tkeys []rune, tchildren []*node, value Value) (*node, error) {
	if err := checkEdges(keys, children); err != nil {
		return nil, err
	}
	if len(tkeys) != len(keys) || len(tchildren) != len(keys) {
		return nil, fmt.Errorf("%w: %d sorted keys but %d tree keys and %d tree children",
			ErrConstruction, len(keys), len(tkeys), len(tchildren))
	}
	n, err := assemble(freq, tfreq, terminal, keys, children, tkeys, tchildren, value)
	if err != nil {
		return nil, err
	}
	// Distinct sorted keys found at distinct tree slots, with equal lengths,
	// make the tree layout a permutation of the sorted one.
	for i, c := range keys {
		j := n.treeChildIndex(c)
		if j < 0 || tchildren[j] != children[i] {
			return nil, fmt.Errorf("%w: tree layout disagrees with sorted layout at %q", ErrConstruction, c)
		}
	}
	return n, nil
}

// assemble fills in the node and checks the frequency bookkeeping.
func assemble(freq, tfreq int, terminal bool, keys []rune, children []*node, tkeys []rune, tchildren []*node, value Value) (*node, error) {
	if tfreq < 0 {
		return nil, fmt.Errorf("%w: negative terminal frequency %d", ErrConstruction, tfreq)
	}
	n := &node{
		freq:     freq,
		tfreq:    tfreq,
		terminal: terminal,
		value:    value,
	}
	if len(keys) > 0 {
		n.keys, n.children = keys, children
		n.tkeys, n.tchildren = tkeys, tchildren
	}

	mass := tfreq
	if terminal {
		n.count = 1
	}
	for _, child := range children {
		mass += child.freq
		n.count += child.count
	}
	if mass != freq {
		return nil, fmt.Errorf("%w: frequency %d does not match terminal frequency plus children (%d)",
			ErrConstruction, freq, mass)
	}
	return n, nil
}

// checkEdges validates the sorted layout.
func checkEdges(keys []rune, children []*node) error {
	if len(keys) != len(children) {
		return fmt.Errorf("%w: %d keys for %d children", ErrConstruction, len(keys), len(children))
	}
	for i, child := range children {
		if child == nil {
			return fmt.Errorf("%w: nil child at %q", ErrConstruction, keys[i])
		}
		if i > 0 && keys[i-1] >= keys[i] {
			return fmt.Errorf("%w: keys not strictly ascending at %q, %q", ErrConstruction, keys[i-1], keys[i])
		}
	}
	return nil
}

// newChain builds the leaf-to-root chain for a single key.
func newChain(key []rune, weight int, value Value) (*node, error) {
	if weight < 0 {
		return nil, fmt.Errorf("%w: negative weight %d", ErrConstruction, weight)
	}
	n := &node{freq: weight, tfreq: weight, terminal: true, value: value, count: 1}
	for i := len(key) - 1; i >= 0; i-- {
		edge := []rune{key[i]}
		child := []*node{n}
		n = &node{
			freq:      weight,
			count:     1,
			keys:      edge,
			children:  child,
			tkeys:     edge,
			tchildren: child,
		}
	}
	return n, nil
}

// completeBinaryTree rearranges ascending edges into implicit binary search
// tree order: for slot i, smaller characters live under 2i+1 and larger ones
// under 2i+2. The inputs are not modified.
func completeBinaryTree(keys []rune, children []*node) ([]rune, []*node) {
	if len(keys) == 0 {
		return nil, nil
	}
	tkeys := make([]rune, len(keys))
	tchildren := make([]*node, len(children))

	// An in-order walk of the heap-shaped tree visits the slots in key order.
	next := 0
	var fill func(i int)
	fill = func(i int) {
		if i >= len(keys) {
			return
		}
		fill(2*i + 1)
		tkeys[i] = keys[next]
		tchildren[i] = children[next]
		next++
		fill(2*i + 2)
	}
	fill(0)

	return tkeys, tchildren
}

// sortedChildIndex returns the position of c in keys, or -1 if not present.
func (n *node) sortedChildIndex(c rune) int {
	i := sort.Search(len(n.keys), func(i int) bool {
		return n.keys[i] >= c
	})
	if i < len(n.keys) && n.keys[i] == c {
		return i
	}
	return -1
}

// treeChildIndex returns the position of c in tkeys, or -1 if not present.
func (n *node) treeChildIndex(c rune) int {
	i := 0
	for i < len(n.tkeys) {
		switch k := n.tkeys[i]; {
		case c < k:
			i = 2*i + 1
		case c > k:
			i = 2*i + 2
		default:
			return i
		}
	}
	return -1
}

// child returns the child reached by c, or nil.
func (n *node) child(c rune) *node {
	i := n.treeChildIndex(c)
	if i < 0 {
		return nil
	}
	return n.tchildren[i]
}

func (n *node) hasChild(c rune) bool {
	return n.treeChildIndex(c) >= 0
}

// endNode descends key from n and returns the node it ends at, or nil.
func (n *node) endNode(key Key) *node {
	// invalid bytes decode to U+FFFD and would alias a stored key
	if !utf8.ValidString(key) {
		return nil
	}
	current := n
	for _, c := range key {
		current = current.child(c)
		if current == nil {
			return nil
		}
	}
	return current
}

// isLeaf reports whether the node has no outgoing edges.
func (n *node) isLeaf() bool { return len(n.keys) == 0 }

// isEmpty reports whether the node carries no information at all.
func (n *node) isEmpty() bool { return n.isLeaf() && !n.terminal && n.freq == 0 }

// Freq returns the frequency mass rooted at the node.
func (n *node) Freq() int { return n.freq }

// TerminalFreq returns the frequency of keys ending at the node.
func (n *node) TerminalFreq() int { return n.tfreq }

// Terminal reports whether a key ends at the node.
func (n *node) Terminal() bool { return n.terminal }

// Value returns the payload of the node, or nil.
func (n *node) Value() Value { return n.value }

// Keys returns a copy of the outgoing characters in ascending order.
func (n *node) Keys() []rune {
	keys := make([]rune, len(n.keys))
	copy(keys, n.keys)
	return keys
}

// Child returns the child reached by c as a Node, or nil.
func (n *node) Child(c rune) Node {
	if child := n.child(c); child != nil {
		return child
	}
	return nil
}

// HasChild reports whether the node has an edge labelled c.
func (n *node) HasChild(c rune) bool { return n.hasChild(c) }
