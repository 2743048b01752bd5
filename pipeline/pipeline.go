// Package pipeline segments, annotates and writes the articles of a
// corpus.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/conllpipe/analyzer"
	"github.com/revelaction/conllpipe/article"
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/corpus"
	"github.com/revelaction/conllpipe/logger"
	"github.com/revelaction/conllpipe/segment"
	"github.com/revelaction/conllpipe/storage"
)

// Runner processes a whole corpus.
type Runner interface {
	Run() error
}

// ArticleError wraps the failure of a single article.
type ArticleError struct {
	Id  int
	Err error
}

func (e *ArticleError) Error() string {
	return fmt.Sprintf("article %d: %v", e.Id, e.Err)
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

// ProgressFunc is called after each article, failed or not.
type ProgressFunc func(done, total, id int)

// Segment splits text into sentences and whitespace separated tokens.
// Whitespace inside a sentence text is collapsed to single spaces.
func Segment(text string, sp segment.Splitter) []*conllu.Sentence {
	var sentences []*conllu.Sentence

	for _, span := range sp.Split(text) {
		words := strings.Fields(span)
		if len(words) == 0 {
			continue
		}

		tokens := make([]*conllu.Token, len(words))
		for i, w := range words {
			tokens[i] = conllu.NewToken(w)
		}

		sentences = append(sentences, conllu.NewSentence(len(sentences), strings.Join(words, " "), tokens))
	}

	return sentences
}

// Basic segments every article and writes its cleaned text. No
// morphological annotation is done.
type Basic struct {
	corpus   *corpus.Manager
	splitter segment.Splitter
	writer   storage.ArticleWriter
	log      *logger.Logger

	OnArticle ProgressFunc
}

var _ Runner = (*Basic)(nil)

// NewBasic returns a Basic pipeline. A nil log discards records.
func NewBasic(c *corpus.Manager, sp segment.Splitter, w storage.ArticleWriter, log *logger.Logger) *Basic {
	if log == nil {
		log = logger.Discard()
	}
	return &Basic{corpus: c, splitter: sp, writer: w, log: log}
}

func (p *Basic) Run() error {
	return runArticles(p.corpus, p.log, p.OnArticle, func(a *article.Article) error {
		a.SetConlluSentences(Segment(a.Text, p.splitter))
		return p.writer.ToCleaned(a)
	})
}

// Advanced segments every article, annotates each token and writes the
// cleaned text and the CONLL-U file with morphological tags.
type Advanced struct {
	corpus    *corpus.Manager
	splitter  segment.Splitter
	writer    storage.ArticleWriter
	annotator Annotator
	log       *logger.Logger

	OnArticle ProgressFunc
}

var _ Runner = (*Advanced)(nil)

func NewAdvanced(c *corpus.Manager, sp segment.Splitter, w storage.ArticleWriter, an Annotator, log *logger.Logger) *Advanced {
	if log == nil {
		log = logger.Discard()
	}
	return &Advanced{corpus: c, splitter: sp, writer: w, annotator: an, log: log}
}

func (p *Advanced) Run() error {
	return runArticles(p.corpus, p.log, p.OnArticle, p.process)
}

// process attaches the sentences only once every token is annotated, so
// a failed article keeps no partial result.
func (p *Advanced) process(a *article.Article) error {
	sentences := Segment(a.Text, p.splitter)

	if pf, ok := p.annotator.(analyzer.Prefetcher); ok {
		var words []string
		for _, s := range sentences {
			for _, tk := range s.Tokens() {
				words = append(words, tk.AnalysisForm())
			}
		}

		if err := pf.Prefetch(words); err != nil {
			return fmt.Errorf("analyzing words: %w", err)
		}
	}

	for _, s := range sentences {
		for _, tk := range s.Tokens() {
			morph, err := p.annotator.Annotate(tk.AnalysisForm())
			if err != nil {
				return fmt.Errorf("sentence %d token %d %q: %w", s.Position(), tk.Position(), tk.Text(), err)
			}
			tk.SetMorphParams(morph)
		}
	}

	a.SetConlluSentences(sentences)

	if err := p.writer.ToCleaned(a); err != nil {
		return err
	}

	return p.writer.ToConllu(a, true)
}

// runArticles calls process for every article in id order. A failing
// article is logged and skipped; the errors are joined.
func runArticles(c *corpus.Manager, log *logger.Logger, onArticle ProgressFunc, process func(*article.Article) error) error {
	ids := c.Ids()
	articles := c.Articles()

	var errs []error
	for i, id := range ids {
		if err := process(articles[id]); err != nil {
			log.Error("article failed", "id", id, "err", err)
			errs = append(errs, &ArticleError{Id: id, Err: err})
		} else {
			log.Debug("article processed", "id", id)
		}

		if onArticle != nil {
			onArticle(i+1, len(ids), id)
		}
	}

	return errors.Join(errs...)
}
