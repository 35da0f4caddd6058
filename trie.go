package freqtrie

import (
	"fmt"
	"reflect"
)

// emptyTrie wraps the canonical empty node.
var emptyTrie = &trie{node: emptyNode}

// trie - persistent frequency trie type.
type trie struct {
	node *node
}

// newTrie wraps n, collapsing an empty root onto the canonical empty trie.
func newTrie(n *node) *trie {
	if n.isEmpty() {
		return emptyTrie
	}
	return &trie{node: n}
}

func (t *trie) root() *node { return t.node }

// Root returns the root node.
func (t *trie) Root() Node { return t.node }

// Size returns the number of keys in the trie.
func (t *trie) Size() int { return t.node.count }

// Freq returns the total frequency of the trie.
func (t *trie) Freq() int { return t.node.freq }

// TerminalFreq returns the frequency of the empty key.
func (t *trie) TerminalFreq() int { return t.node.tfreq }

// EndNode returns the node spelled by prefix, or nil if no key starts with it.
func (t *trie) EndNode(prefix Key) Node {
	if n := t.node.endNode(prefix); n != nil {
		return n
	}
	return nil
}

// Contains reports whether key was inserted into the trie.
func (t *trie) Contains(key Key) bool {
	n := t.node.endNode(key)
	return n != nil && n.terminal
}

// Lookup returns the payload stored under key. The second result is false
// when key is not in the trie.
func (t *trie) Lookup(key Key) (Value, bool) {
	n := t.node.endNode(key)
	if n == nil || !n.terminal {
		return nil, false
	}
	return n.value, true
}

// Frequency returns the terminal frequency of key, or 0 if key is absent.
func (t *trie) Frequency(key Key) int {
	n := t.node.endNode(key)
	if n == nil || !n.terminal {
		return 0
	}
	return n.tfreq
}

// PrefixFrequency returns the frequency mass of all keys starting with prefix.
func (t *trie) PrefixFrequency(prefix Key) int {
	n := t.node.endNode(prefix)
	if n == nil {
		return 0
	}
	return n.freq
}

// Merge returns the union of t and other. Where both hold a payload for
// the same key, other's payload wins.
func (t *trie) Merge(other Trie) Trie {
	o := other.root()
	if o.isEmpty() {
		return t
	}
	if t.node.isEmpty() {
		return other
	}
	return newTrie(merge(t.node, o))
}

// Assoc returns t with weight added to key and its payload replaced by value
// when value is not nil.
func (t *trie) Assoc(key Key, weight int, value Value) (Trie, error) {
	s, err := Singleton(key, weight, value)
	if err != nil {
		return nil, err
	}
	return t.Merge(s), nil
}

// Without returns t with key and its whole frequency removed. If key is not
// in the trie, t itself is returned.
func (t *trie) Without(key Key) (Trie, error) {
	end := t.node.endNode(key)
	if end == nil || !end.terminal {
		return t, nil
	}
	return t.removeHelper(key, end.tfreq)
}

// Subtract returns t with amount taken off the frequency of key. The key is
// removed once its frequency is used up. If key is not in the trie or amount
// is zero, t itself is returned.
func (t *trie) Subtract(key Key, amount int) (Trie, error) {
	end := t.node.endNode(key)
	if end == nil || !end.terminal {
		return t, nil
	}
	if amount < 0 || amount > end.tfreq {
		return nil, fmt.Errorf("%w: cannot subtract %d from %q with frequency %d", ErrState, amount, key, end.tfreq)
	}
	if amount == 0 {
		return t, nil
	}
	return t.removeHelper(key, amount)
}

// removeHelper is a helper function for Without and Subtract.
func (t *trie) removeHelper(key Key, amount int) (Trie, error) {
	n, err := t.node.remove([]rune(key), amount)
	if err != nil {
		return nil, err
	}
	return newTrie(n), nil
}

// Each iterates over the keys in ascending code point order and calls the
// given callback with every key and its terminal node.
func (t *trie) Each(cb Callback) {
	t.eachHelper(t.node, nil, cb)
}

// EachPrefix is like Each, restricted to the keys starting with prefix.
func (t *trie) EachPrefix(prefix Key, cb Callback) {
	n := t.node.endNode(prefix)
	if n == nil {
		return
	}
	t.eachHelper(n, []rune(prefix), cb)
}

// eachHelper is a helper function of Each and EachPrefix.
func (t *trie) eachHelper(current *node, path []rune, cb Callback) {
	if current.terminal {
		cb(string(path), current)
	}
	for i, c := range current.keys {
		t.eachHelper(current.children[i], append(path, c), cb)
	}
}

// Equal reports whether a and b hold the same keys with the same
// frequencies, terminality and payloads.
func Equal(a, b Trie) bool {
	return equalNodes(a.root(), b.root())
}

func equalNodes(a, b *node) bool {
	if a == b {
		return true
	}
	if a.freq != b.freq || a.tfreq != b.tfreq || a.terminal != b.terminal || len(a.keys) != len(b.keys) {
		return false
	}
	if !reflect.DeepEqual(a.value, b.value) {
		return false
	}
	for i := range a.keys {
		if a.keys[i] != b.keys[i] || !equalNodes(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
