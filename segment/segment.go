// Package segment splits article text into sentences.
package segment

import (
	"regexp"
	"strings"
	"unicode"
)

// Splitter splits a text into sentence spans.
type Splitter interface {
	Split(text string) []string
}

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Rule splits after '.', '!', '?' or '…' (and any closing quotes or
// brackets following them) when whitespace and then an upper-case letter, a
// digit or an opening quote or dash come next. Blank lines always end a
// sentence. "дни.Майских" is not split, as there is no whitespace.
type Rule struct{}

var _ Splitter = Rule{}

func (Rule) Split(text string) []string {
	var spans []string
	for _, par := range paragraphBreak.Split(text, -1) {
		spans = append(spans, splitParagraph(par)...)
	}

	return spans
}

func splitParagraph(par string) []string {
	runes := []rune(par)

	var spans []string
	start := 0

	for i := 0; i < len(runes); i++ {
		if !isTerminator(runes[i]) {
			continue
		}

		// consume repeated terminators and closing marks: ?!» .")
		end := i + 1
		for end < len(runes) && (isTerminator(runes[end]) || isCloser(runes[end])) {
			end++
		}

		next := end
		for next < len(runes) && unicode.IsSpace(runes[next]) {
			next++
		}

		if next == end || next == len(runes) || !isSentenceStart(runes[next]) {
			i = end - 1
			continue
		}

		spans = appendSpan(spans, string(runes[start:end]))
		start = next
		i = next - 1
	}

	return appendSpan(spans, string(runes[start:]))
}

func appendSpan(spans []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		spans = append(spans, s)
	}
	return spans
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?' || r == '…'
}

func isCloser(r rune) bool {
	switch r {
	case '»', '"', '”', '’', '\'', ')', ']':
		return true
	}
	return false
}

func isSentenceStart(r rune) bool {
	if unicode.IsUpper(r) || unicode.IsDigit(r) {
		return true
	}

	switch r {
	case '«', '"', '“', '(', '—', '–', '-':
		return true
	}
	return false
}
