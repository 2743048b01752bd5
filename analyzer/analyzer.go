// Package analyzer adapts external morphological analyzers. Each analyzer
// returns a lemma and a raw tag in its own vocabulary.
package analyzer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrNoAnalysis is returned when the analyzer has no result for a word.
var ErrNoAnalysis = errors.New("no analysis")

// Analysis is the result of analyzing one word.
type Analysis[T any] struct {
	Lemma string
	Tag   T
}

// Analyzer analyzes single words.
type Analyzer[T any] interface {
	Analyze(word string) (Analysis[T], error)
}

// BatchAnalyzer analyzes many words with one external process. Words
// missing from the returned map have no analysis.
type BatchAnalyzer[T any] interface {
	Analyzer[T]
	AnalyzeAll(words []string) (map[string]Analysis[T], error)
}

// Prefetcher analyzes words ahead of the Analyze calls that need them.
type Prefetcher interface {
	Prefetch(words []string) error
}

// runner executes an external command with stdin and returns its stdout.
type runner func(ctx context.Context, stdin string, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = strings.NewReader(stdin)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("error executing %s: %w: %s", name, err, strings.TrimSpace(stderr.String()))
	}

	return out.Bytes(), nil
}

// process holds what the exec based analyzers share.
type process struct {
	run     runner
	timeout time.Duration
}

func (p process) exec(stdin string, name string, args ...string) ([]byte, error) {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	return p.run(ctx, stdin, name, args...)
}
