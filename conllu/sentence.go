package conllu

import (
	"io"
	"strconv"
	"strings"
)

const (
	numColumns = 10

	sentIdPrefix = "# sent_id = "
	textPrefix   = "# text = "
)

// Sentence is an ordered list of tokens with its position in the article
// and its original text.
type Sentence struct {
	// zero-based index of the sentence in the article
	position int
	text     string
	tokens   []*Token
}

// NewSentence returns a Sentence and assigns each token its 1-based
// position. Token order is word order.
func NewSentence(position int, text string, tokens []*Token) *Sentence {
	for i, tk := range tokens {
		tk.position = i + 1
	}

	return &Sentence{
		position: position,
		text:     text,
		tokens:   tokens,
	}
}

// Position returns the 0-based index of the sentence in its article.
func (s *Sentence) Position() int {
	return s.position
}

// Text returns the sentence as segmented, whitespace collapsed.
func (s *Sentence) Text() string {
	return s.text
}

// Tokens returns the tokens of the sentence. Callers annotate them in place.
func (s *Sentence) Tokens() []*Token {
	return s.tokens
}

// ConlluText renders the sentence block, including the trailing blank line.
func (s *Sentence) ConlluText(includeTags bool) string {
	var b strings.Builder

	b.WriteString(sentIdPrefix)
	b.WriteString(strconv.Itoa(s.position))
	b.WriteByte('\n')
	b.WriteString(textPrefix)
	b.WriteString(s.text)
	b.WriteByte('\n')

	for _, tk := range s.tokens {
		b.WriteString(tk.ConlluText(includeTags))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	return b.String()
}

// CleanedSentence joins the cleaned tokens with single spaces. Tokens that
// are empty once cleaned are skipped.
func (s *Sentence) CleanedSentence() string {
	words := make([]string, 0, len(s.tokens))
	for _, tk := range s.tokens {
		if c := tk.Cleaned(); c != "" {
			words = append(words, c)
		}
	}

	return strings.Join(words, " ")
}

// Write renders all sentences to w in order.
func Write(w io.Writer, sentences []*Sentence, includeTags bool) error {
	for _, s := range sentences {
		if _, err := io.WriteString(w, s.ConlluText(includeTags)); err != nil {
			return err
		}
	}

	return nil
}

// Text renders all sentences as one CONLL-U document.
func Text(sentences []*Sentence, includeTags bool) string {
	var b strings.Builder
	// strings.Builder never fails
	_ = Write(&b, sentences, includeTags)
	return b.String()
}
