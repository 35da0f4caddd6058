package dictionary

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"freqtrie"
)

// Source is a named stream of text.
type Source struct {
	Name   string
	Reader io.Reader
}

// Options configures a Builder.
type Options struct {
	MinLength int
	FoldCase  bool
	Normalize bool
	// Workers bounds the number of sources tokenized at once.
	Workers int
	// Logger receives build progress. Nil disables logging.
	Logger *zerolog.Logger
}

// Builder builds frequency dictionaries from text sources.
type Builder struct {
	tokenizer *Tokenizer
	workers   int
	log       zerolog.Logger
}

// NewBuilder returns a builder for opts.
func NewBuilder(opts Options) *Builder {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	minLength := opts.MinLength
	if minLength < 1 {
		minLength = 1
	}
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}
	return &Builder{
		tokenizer: NewTokenizer(minLength, opts.FoldCase, opts.Normalize),
		workers:   workers,
		log:       log,
	}
}

// Canonical returns word as it would be stored by Build.
func (b *Builder) Canonical(word string) string {
	return b.tokenizer.Canonical(word)
}

// Build counts the words of every source into one trie. Each word carries
// the name of the last source, in argument order, that contains it.
//
// Sources are tokenized concurrently into separate tries which are merged
// once all of them are done.
func (b *Builder) Build(ctx context.Context, sources ...Source) (freqtrie.Trie, error) {
	tries := make([]freqtrie.Trie, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			tr, err := b.buildSource(gctx, src)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name, err)
			}
			tries[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := freqtrie.Empty()
	for _, tr := range tries {
		result = result.Merge(tr)
	}

	b.log.Info().
		Int("sources", len(sources)).
		Int("words", result.Size()).
		Int("tokens", result.Freq()).
		Msg("dictionary built")

	return result, nil
}

// buildSource tokenizes a single source.
func (b *Builder) buildSource(ctx context.Context, src Source) (freqtrie.Trie, error) {
	counts := make(map[string]int)
	err := b.tokenizer.Words(ctx, src.Reader, func(word string) {
		counts[word]++
	})
	if err != nil {
		return nil, err
	}

	words := make([]string, 0, len(counts))
	for word := range counts {
		words = append(words, word)
	}
	sort.Strings(words)

	tr := freqtrie.Empty()
	for _, word := range words {
		tr, err = tr.Assoc(word, counts[word], src.Name)
		if err != nil {
			return nil, err
		}
	}

	b.log.Debug().
		Str("source", src.Name).
		Int("words", tr.Size()).
		Int("tokens", tr.Freq()).
		Msg("source tokenized")

	return tr, nil
}
