package dictionary

import (
	"sort"

	"freqtrie"
)

// Completion is one dictionary word found under a prefix.
type Completion struct {
	Word   string
	Freq   int
	Source interface{}
}

// Complete returns the words of tr starting with prefix, most frequent
// first, ties broken by word. A limit of 0 returns every match.
func Complete(tr freqtrie.Trie, prefix string, limit int) []Completion {
	var out []Completion
	tr.EachPrefix(prefix, func(key freqtrie.Key, n freqtrie.Node) {
		out = append(out, Completion{Word: key, Freq: n.TerminalFreq(), Source: n.Value()})
	})

	// EachPrefix yields words in ascending order already
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Freq > out[j].Freq
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
