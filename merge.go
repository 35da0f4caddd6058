package freqtrie

// merge returns the union of a and b.
//
// Frequencies add up and terminality is or-ed. The payload of b wins over the
// payload of a whenever b has one, so merge(a, b) and merge(b, a) can differ in
// their payloads while agreeing on keys and frequencies.
//
// Children present on one side only are shared by reference; children present
// on both sides are merged recursively. Only the new node gets a fresh tree
// layout.
func merge(a, b *node) *node {
	freq := a.freq + b.freq
	tfreq := a.tfreq + b.tfreq
	terminal := a.terminal || b.terminal
	value := a.value
	if b.value != nil {
		value = b.value
	}

	if a.isLeaf() {
		return mustNode(newNodeLayout(freq, tfreq, terminal, b.keys, b.children, b.tkeys, b.tchildren, value))
	}
	if b.isLeaf() {
		return mustNode(newNodeLayout(freq, tfreq, terminal, a.keys, a.children, a.tkeys, a.tchildren, value))
	}

	unique := countUnique(a.keys, b.keys)
	keys := make([]rune, unique)
	children := make([]*node, unique)

	i, j, k := 0, 0, 0
	for i < len(a.keys) && j < len(b.keys) {
		switch {
		case a.keys[i] < b.keys[j]:
			keys[k], children[k] = a.keys[i], a.children[i]
			i++
		case a.keys[i] > b.keys[j]:
			keys[k], children[k] = b.keys[j], b.children[j]
			j++
		default:
			keys[k], children[k] = a.keys[i], merge(a.children[i], b.children[j])
			i++
			j++
		}
		k++
	}
	for ; i < len(a.keys); i, k = i+1, k+1 {
		keys[k], children[k] = a.keys[i], a.children[i]
	}
	for ; j < len(b.keys); j, k = j+1, k+1 {
		keys[k], children[k] = b.keys[j], b.children[j]
	}

	return mustNode(newNode(freq, tfreq, terminal, keys, children, value))
}

// countUnique returns the size of the union of two ascending key sets.
func countUnique(a, b []rune) int {
	i, j, count := 0, 0, 0
	for i < len(a) && j < len(b) {
		count++
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			i++
			j++
		}
	}
	return count + (len(a) - i) + (len(b) - j)
}

// mustNode panics on a construction error. Merging well-formed nodes cannot
// produce one.
func mustNode(n *node, err error) *node {
	if err != nil {
		panic(err)
	}
	return n
}
