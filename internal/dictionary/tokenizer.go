package dictionary

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// maxTokenSize bounds a single whitespace separated token.
const maxTokenSize = 1 << 20

// Tokenizer splits text into dictionary words.
type Tokenizer struct {
	minLength int
	foldCase  bool
	normalize bool
}

// NewTokenizer returns a tokenizer dropping words shorter than minLength
// code points.
func NewTokenizer(minLength int, foldCase, normalize bool) *Tokenizer {
	return &Tokenizer{minLength: minLength, foldCase: foldCase, normalize: normalize}
}

// Words calls fn for every word read from r, in order. It stops early when
// ctx is done.
func (tk *Tokenizer) Words(ctx context.Context, r io.Reader, fn func(word string)) error {
	// a Caser keeps state and must not be shared between goroutines
	var folder cases.Caser
	if tk.foldCase {
		folder = cases.Fold()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	for n := 0; scanner.Scan(); n++ {
		if n%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		word := tk.canonical(scanner.Text(), folder)
		if word == "" || !utf8.ValidString(word) || utf8.RuneCountInString(word) < tk.minLength {
			continue
		}
		fn(word)
	}
	return scanner.Err()
}

// Canonical returns word the way Words would emit it, so that user input can
// be matched against a dictionary.
func (tk *Tokenizer) Canonical(word string) string {
	var folder cases.Caser
	if tk.foldCase {
		folder = cases.Fold()
	}
	return tk.canonical(word, folder)
}

func (tk *Tokenizer) canonical(word string, folder cases.Caser) string {
	word = strings.TrimFunc(word, isSeparator)
	if tk.normalize {
		word = norm.NFC.String(word)
	}
	if tk.foldCase {
		word = folder.String(word)
	}
	return word
}

func isSeparator(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
