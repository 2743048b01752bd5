package pipeline

import (
	"errors"

	"github.com/revelaction/conllpipe/analyzer"
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/tagconv"
)

// Annotator returns the morphological annotation of a word in its analysis
// form, see conllu.Token.AnalysisForm.
type Annotator interface {
	Annotate(word string) (conllu.MorphParams, error)
}

// TagAnnotator couples an analyzer with the converter for its tag
// vocabulary.
type TagAnnotator[T any] struct {
	analyzer  analyzer.Analyzer[T]
	converter tagconv.Converter[T]
}

var (
	_ Annotator           = (*TagAnnotator[string])(nil)
	_ analyzer.Prefetcher = (*TagAnnotator[string])(nil)
)

func NewTagAnnotator[T any](a analyzer.Analyzer[T], c tagconv.Converter[T]) *TagAnnotator[T] {
	return &TagAnnotator[T]{analyzer: a, converter: c}
}

// Prefetch passes the words to the analyzer when it can analyze them ahead.
func (ta *TagAnnotator[T]) Prefetch(words []string) error {
	if p, ok := ta.analyzer.(analyzer.Prefetcher); ok {
		return p.Prefetch(words)
	}
	return nil
}

// Annotate returns conllu.UnknownMorph when the word is empty or the
// analyzer has nothing for it. Analyzer failures and unknown POS tags are
// returned as errors.
func (ta *TagAnnotator[T]) Annotate(word string) (conllu.MorphParams, error) {
	if word == "" {
		return conllu.UnknownMorph, nil
	}

	an, err := ta.analyzer.Analyze(word)
	if errors.Is(err, analyzer.ErrNoAnalysis) {
		return conllu.UnknownMorph, nil
	}
	if err != nil {
		return conllu.MorphParams{}, err
	}

	pos, feats, err := tagconv.Convert(ta.converter, an.Tag)
	if err != nil {
		return conllu.MorphParams{}, err
	}

	return conllu.MorphParams{Lemma: an.Lemma, POS: pos, Tags: feats}, nil
}
