package analyzer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/conllpipe/tagconv"
)

// Lexicon is an in-memory analyzer backed by a tab-separated file:
//
//	# form	lemma	tag
//	мыла	мыть	V,несов,пе=прош,ед,изъяв,жен
//
// Forms are looked up lower-cased.
type Lexicon[T any] struct {
	entries map[string]Analysis[T]
}

// ParseLexicon reads lexicon lines from r, converting tags with parse. The
// first entry for a form wins.
func ParseLexicon[T any](r io.Reader, parse func(string) T) (*Lexicon[T], error) {
	lx := &Lexicon[T]{entries: map[string]Analysis[T]{}}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("lexicon line %d: expected form, lemma and tag", lineNum)
		}

		form := strings.ToLower(strings.TrimSpace(fields[0]))
		if _, ok := lx.entries[form]; ok {
			continue
		}

		lx.entries[form] = Analysis[T]{
			Lemma: strings.TrimSpace(fields[1]),
			Tag:   parse(strings.TrimSpace(fields[2])),
		}
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lx, nil
}

func (lx *Lexicon[T]) Analyze(word string) (Analysis[T], error) {
	a, ok := lx.entries[strings.ToLower(word)]
	if !ok {
		return Analysis[T]{}, ErrNoAnalysis
	}
	return a, nil
}

func (lx *Lexicon[T]) Len() int {
	return len(lx.entries)
}

// NewMystemLexicon loads a lexicon with Mystem tags.
func NewMystemLexicon(path string) (*Lexicon[string], error) {
	return loadLexicon(path, func(s string) string { return s })
}

// NewOpenCorporaLexicon loads a lexicon with OpenCorpora tags.
func NewOpenCorporaLexicon(path string) (*Lexicon[tagconv.OpenCorporaTag], error) {
	return loadLexicon(path, tagconv.ParseOpenCorporaTag)
}

func loadLexicon[T any](path string, parse func(string) T) (*Lexicon[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	lx, err := ParseLexicon(f, parse)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return lx, nil
}
