// Package freqtrie implements a persistent trie mapping keys to a frequency
// and an optional payload.
package freqtrie

import (
	"fmt"
	"unicode/utf8"
)

// Key type. Keys are walked as a sequence of code points and must be valid
// UTF-8.
type Key = string

// Value type. A nil Value means no payload.
type Value = interface{}

// Node - read-only view of a trie node.
type Node interface {
	// Freq returns the frequency mass of every key passing through or ending at the node.
	Freq() int
	// TerminalFreq returns the frequency of the keys ending exactly at the node.
	TerminalFreq() int
	Terminal() bool
	Value() Value
	// Keys returns the outgoing characters in ascending order.
	Keys() []rune
	// Child returns the child reached by c, or nil if there is none.
	Child(c rune) Node
	HasChild(c rune) bool
}

// Callback - callback function that is passed in Each and EachPrefix.
type Callback func(key Key, node Node)

// Entry is one weighted insertion.
type Entry struct {
	Key    Key
	Weight int
	Value  Value
}

// Trie - persistent frequency trie interface.
//
// A Trie is never modified; every update returns a new Trie that shares the
// unchanged subtrees with its operands. Tries may be read from any number of
// goroutines without synchronization.
type Trie interface {
	Contains(key Key) bool
	Lookup(key Key) (value Value, ok bool)
	Frequency(key Key) int
	PrefixFrequency(prefix Key) int
	EndNode(prefix Key) Node

	Merge(other Trie) Trie
	Assoc(key Key, weight int, value Value) (Trie, error)
	Without(key Key) (Trie, error)
	Subtract(key Key, amount int) (Trie, error)

	Each(cb Callback)
	EachPrefix(prefix Key, cb Callback)
	Size() int
	Freq() int
	TerminalFreq() int
	Root() Node

	root() *node
}

// Empty returns the canonical empty trie.
func Empty() Trie {
	return emptyTrie
}

// Singleton returns a trie holding exactly key with the given weight and payload.
func Singleton(key Key, weight int, value Value) (Trie, error) {
	if !utf8.ValidString(key) {
		return nil, fmt.Errorf("%w: key %q is not valid UTF-8", ErrConstruction, key)
	}
	n, err := newChain([]rune(key), weight, value)
	if err != nil {
		return nil, err
	}
	return newTrie(n), nil
}

// MustSingleton is like Singleton but panics on a negative weight or an
// invalid key.
func MustSingleton(key Key, weight int, value Value) Trie {
	t, err := Singleton(key, weight, value)
	if err != nil {
		panic(err)
	}
	return t
}

// FromEntries merges one singleton per entry, in order, so a later entry's
// payload replaces an earlier one for the same key.
func FromEntries(entries ...Entry) (Trie, error) {
	t := Empty()
	for _, e := range entries {
		s, err := Singleton(e.Key, e.Weight, e.Value)
		if err != nil {
			return nil, err
		}
		t = t.Merge(s)
	}
	return t, nil
}
