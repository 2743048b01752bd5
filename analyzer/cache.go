package analyzer

import (
	"errors"
	"strings"
	"sync"
)

type cacheEntry[T any] struct {
	analysis Analysis[T]

	// nil or ErrNoAnalysis
	err error
}

// Cached remembers the result of every analyzed word, so each distinct
// word starts at most one analyzer process. Failures other than
// ErrNoAnalysis are not remembered.
type Cached[T any] struct {
	analyzer Analyzer[T]

	mu      sync.Mutex
	entries map[string]cacheEntry[T]
}

var (
	_ Analyzer[string] = (*Cached[string])(nil)
	_ Prefetcher       = (*Cached[string])(nil)
)

func NewCached[T any](a Analyzer[T]) *Cached[T] {
	return &Cached[T]{analyzer: a, entries: map[string]cacheEntry[T]{}}
}

func (c *Cached[T]) Analyze(word string) (Analysis[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[word]; ok {
		return e.analysis, e.err
	}

	a, err := c.analyzer.Analyze(word)
	if err == nil || errors.Is(err, ErrNoAnalysis) {
		c.entries[word] = cacheEntry[T]{analysis: a, err: err}
	}

	return a, err
}

// Prefetch analyzes the words not yet cached with a single AnalyzeAll call.
// It does nothing if the analyzer can not batch.
func (c *Cached[T]) Prefetch(words []string) error {
	b, ok := c.analyzer.(BatchAnalyzer[T])
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var missing []string
	seen := map[string]bool{}
	for _, w := range words {
		if strings.TrimSpace(w) == "" || seen[w] {
			continue
		}
		seen[w] = true

		if _, ok := c.entries[w]; !ok {
			missing = append(missing, w)
		}
	}

	if len(missing) == 0 {
		return nil
	}

	results, err := b.AnalyzeAll(missing)
	if err != nil {
		return err
	}

	for _, w := range missing {
		if a, ok := results[w]; ok {
			c.entries[w] = cacheEntry[T]{analysis: a}
		} else {
			c.entries[w] = cacheEntry[T]{err: ErrNoAnalysis}
		}
	}

	return nil
}

// Len returns the number of cached words.
func (c *Cached[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
