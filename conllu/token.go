package conllu

import (
	"strconv"
	"strings"
	"unicode"
)

// Placeholder is the CONLL-U value for an empty column.
const Placeholder = "_"

// MorphParams holds the morphological annotation of a token.
type MorphParams struct {
	// The dictionary form of the word
	Lemma string `json:"lemma"`

	// UD part of speech
	POS string `json:"pos"`

	// UD features, Key=Value pairs joined with '|'
	Tags string `json:"tags"`
}

// UnknownMorph is attached to tokens the analyzer could not resolve.
var UnknownMorph = MorphParams{Lemma: Placeholder, POS: "X", Tags: Placeholder}

// Token represents a word of the sentence with its optional annotation.
type Token struct {
	text string

	// nil until annotated
	morph *MorphParams

	// 1-based index in the owning sentence
	position int
}

// NewToken returns a token with no annotation.
func NewToken(text string) *Token {
	return &Token{text: text}
}

// Text returns the unmodified surface form.
func (t *Token) Text() string {
	return t.text
}

// Position returns the 1-based index of the token in its sentence.
func (t *Token) Position() int {
	return t.position
}

// SetMorphParams replaces the annotation of the token.
func (t *Token) SetMorphParams(p MorphParams) {
	t.morph = &p
}

// MorphParams returns the annotation, or the zero value if the token was never
// annotated.
func (t *Token) MorphParams() MorphParams {
	if t.morph == nil {
		return MorphParams{}
	}
	return *t.morph
}

// HasMorphParams reports whether the token was annotated.
func (t *Token) HasMorphParams() bool {
	return t.morph != nil
}

// Columns returns the LEMMA, UPOS and FEATS values of the token. An
// unannotated token has its lower-cased text as lemma.
func (t *Token) Columns(includeTags bool) (lemma, pos, feats string) {
	lemma = strings.ToLower(t.text)
	pos, feats = Placeholder, Placeholder

	if t.morph != nil {
		lemma = orPlaceholder(t.morph.Lemma)
		pos = orPlaceholder(t.morph.POS)
		feats = orPlaceholder(t.morph.Tags)
	}

	if !includeTags {
		pos, feats = Placeholder, Placeholder
	}

	return lemma, pos, feats
}

// ConlluText returns the CONLL-U line of the token, without line break.
func (t *Token) ConlluText(includeTags bool) string {
	lemma, pos, feats := t.Columns(includeTags)

	cols := [numColumns]string{
		strconv.Itoa(t.position),
		t.text,
		lemma,
		pos,
		Placeholder,
		feats,
		Placeholder,
		Placeholder,
		Placeholder,
		Placeholder,
	}

	return strings.Join(cols[:], "\t")
}

// Cleaned returns the lower-cased token without punctuation.
func (t *Token) Cleaned() string {
	return Clean(t.text)
}

// AnalysisForm returns the lower-cased token with the punctuation at its
// edges trimmed. Inner punctuation stays, so "Кто-то," becomes "кто-то".
func (t *Token) AnalysisForm() string {
	return strings.ToLower(strings.TrimFunc(t.text, isStripped))
}

// Clean removes ASCII punctuation and the characters «»—% from s and
// lower-cases the rest. Punctuation is dropped, not replaced by spaces.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		if isStripped(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

func isStripped(r rune) bool {
	// ASCII punctuation and symbols: !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
	if r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
		return true
	}

	switch r {
	case '«', '»', '—', '%':
		return true
	}

	return false
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
