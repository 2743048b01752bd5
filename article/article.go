// Package article holds the Article entity and the file naming convention
// of a corpus directory.
package article

import (
	"strings"

	"github.com/revelaction/conllpipe/conllu"
)

// Article is a raw text with its metadata and, once processed, its
// CONLL-U sentences.
type Article struct {
	Id int `json:"id"`

	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Author []string `json:"author"`
	Topics []string `json:"topics"`
	Date   string   `json:"date"`

	// The raw text
	Text string `json:"-"`

	sentences []*conllu.Sentence
}

func New(id int, text string) *Article {
	return &Article{Id: id, Text: text}
}

// SetConlluSentences replaces the processed sentences of the article.
func (a *Article) SetConlluSentences(sentences []*conllu.Sentence) {
	a.sentences = sentences
}

func (a *Article) ConlluSentences() []*conllu.Sentence {
	return a.sentences
}

// CleanedText returns one cleaned sentence per line. Sentences that are
// empty once cleaned are skipped.
func (a *Article) CleanedText() string {
	var b strings.Builder
	for _, s := range a.sentences {
		cleaned := s.CleanedSentence()
		if cleaned == "" {
			continue
		}
		b.WriteString(cleaned)
		b.WriteByte('\n')
	}

	return b.String()
}

// ConlluText renders all sentences of the article.
func (a *Article) ConlluText(includeTags bool) string {
	return conllu.Text(a.sentences, includeTags)
}
