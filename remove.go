package freqtrie

import "fmt"

// remove subtracts amount from every node on the path spelled by suffix and
// returns the rebuilt node.
//
// At the end of the path amount is taken from the terminal frequency. Taking
// all of it ends the key there: a node left without children is replaced by
// the canonical empty node, otherwise it stays as a plain inner node. Taking
// less keeps the key with its payload.
//
// On the way back up, a child that is neither terminal nor has children of
// its own is pruned together with its edge.
func (n *node) remove(suffix []rune, amount int) (*node, error) {
	freq := n.freq - amount
	if freq < 0 {
		return nil, fmt.Errorf("%w: cannot remove %d from frequency %d", ErrState, amount, n.freq)
	}

	if len(suffix) == 0 {
		switch {
		case amount > n.tfreq:
			return nil, fmt.Errorf("%w: cannot remove %d from terminal frequency %d", ErrState, amount, n.tfreq)
		case amount < n.tfreq:
			return newNodeLayout(freq, n.tfreq-amount, n.terminal, n.keys, n.children, n.tkeys, n.tchildren, n.value)
		case n.isLeaf():
			return emptyNode, nil
		default:
			return newNodeLayout(freq, 0, false, n.keys, n.children, n.tkeys, n.tchildren, nil)
		}
	}

	c := suffix[0]
	x := n.sortedChildIndex(c)
	y := n.treeChildIndex(c)
	if x < 0 || y < 0 {
		return n, nil
	}

	replacement, err := n.children[x].remove(suffix[1:], amount)
	if err != nil {
		return nil, err
	}

	if replacement.terminal || !replacement.isLeaf() {
		children := make([]*node, len(n.children))
		copy(children, n.children)
		tchildren := make([]*node, len(n.tchildren))
		copy(tchildren, n.tchildren)
		children[x] = replacement
		tchildren[y] = replacement
		return newNodeLayout(freq, n.tfreq, n.terminal, n.keys, children, n.tkeys, tchildren, n.value)
	}

	// The child is now useless: drop the edge and rebuild the tree layout.
	keys := make([]rune, 0, len(n.keys)-1)
	keys = append(keys, n.keys[:x]...)
	keys = append(keys, n.keys[x+1:]...)
	children := make([]*node, 0, len(n.children)-1)
	children = append(children, n.children[:x]...)
	children = append(children, n.children[x+1:]...)

	return newNode(freq, n.tfreq, n.terminal, keys, children, n.value)
}
