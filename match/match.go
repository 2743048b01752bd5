// Package match finds the sentences of processed articles that contain a
// sequence of lemmas and tags.
package match

import (
	"strings"

	"github.com/revelaction/conllpipe/conllu"
)

// Matcher matches sentences against one Expr.
type Matcher struct {
	Expr Expr
}

func NewMatcher(expr Expr) *Matcher {
	return &Matcher{Expr: expr}
}

// matchedTokens is an ordered set of sentence tokens matched by the items
// of an Expr, one token per item so far.
//
// the expression "мыть 2 NOUN" will match the sentence
//
//	Мама мыла большую раму
//
// with the matchedTokens [мыла, раму].
type matchedTokens []*conllu.Token

// SentenceMatch is a sentence matched by the Expr with every token
// combination that satisfies it.
type SentenceMatch struct {
	ArticleId int

	Sentence *conllu.Sentence

	matches []matchedTokens
}

// Tokens returns the matched tokens without duplicates, in sentence order.
func (sm *SentenceMatch) Tokens() []*conllu.Token {
	seen := map[int]bool{}
	for _, m := range sm.matches {
		for _, t := range m {
			seen[t.Position()] = true
		}
	}

	var tokens []*conllu.Token
	for _, t := range sm.Sentence.Tokens() {
		if seen[t.Position()] {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

// NumMatches returns the number of token combinations matching the Expr.
func (sm *SentenceMatch) NumMatches() int {
	return len(sm.matches)
}

// MatchSentence returns nil when the sentence does not match.
func (m *Matcher) MatchSentence(articleId int, s *conllu.Sentence) *SentenceMatch {
	if len(m.Expr) == 0 {
		return nil
	}

	tokens := s.Tokens()

	var candidates []matchedTokens
	for idx, item := range m.Expr {
		if idx == 0 || item.Near == 0 {
			candidates = matchOne(tokens, item, candidates, idx == 0)
		} else {
			candidates = matchNear(tokens, item, candidates)
		}

		if len(candidates) == 0 {
			return nil
		}
	}

	return &SentenceMatch{ArticleId: articleId, Sentence: s, matches: candidates}
}

// Match returns the matching sentences of an article.
func (m *Matcher) Match(articleId int, sentences []*conllu.Sentence) []*SentenceMatch {
	var results []*SentenceMatch
	for _, s := range sentences {
		if sm := m.MatchSentence(articleId, s); sm != nil {
			results = append(results, sm)
		}
	}

	return results
}

// matchOne extends every candidate with every matching token anywhere in
// the sentence.
func matchOne(tokens []*conllu.Token, item Item, candidates []matchedTokens, first bool) (matched []matchedTokens) {
	if first {
		candidates = []matchedTokens{{}}
	}

	for _, tc := range candidates {
		for _, t := range tokens {
			if isTokenMatch(t, item) {
				matched = append(matched, extend(tc, t))
			}
		}
	}

	return matched
}

// matchNear extends every candidate with the matching tokens that follow
// its last token within item.Near positions.
func matchNear(tokens []*conllu.Token, item Item, candidates []matchedTokens) (matched []matchedTokens) {
	sentenceEnd := len(tokens) - 1

	for _, tc := range candidates {
		// positions are 1-based, indexes 0-based
		previousIndex := tc[len(tc)-1].Position() - 1
		if previousIndex == sentenceEnd {
			continue
		}

		requiredEnd := min(previousIndex+item.Near, sentenceEnd)

		for _, t := range tokens[previousIndex+1 : requiredEnd+1] {
			if isTokenMatch(t, item) {
				matched = append(matched, extend(tc, t))
			}
		}
	}

	return matched
}

func extend(tc matchedTokens, t *conllu.Token) matchedTokens {
	c := make(matchedTokens, 0, len(tc)+1)
	c = append(c, tc...)
	return append(c, t)
}

func isTokenMatch(t *conllu.Token, item Item) bool {
	if len(item.Lemma) > 0 {
		lemma := strings.ToLower(t.Text())
		if t.HasMorphParams() {
			lemma = t.MorphParams().Lemma
		}

		// split possible OR values. If no "|" just one value
		isOrValue := false
		for _, orValue := range strings.Split(item.Lemma, "|") {
			if orValue == lemma {
				isOrValue = true
				break
			}
		}

		if !isOrValue {
			return false
		}
	}

	if len(item.Tag) > 0 {
		m := t.MorphParams()

		switch separator(item.Tag) {
		case "+":
			// AND: must contain each
			for _, andItem := range strings.Split(item.Tag, "+") {
				if !hasTag(m, andItem) {
					return false
				}
			}
		case "/":
			// OR
			isMatched := false
			for _, orItem := range strings.Split(item.Tag, "/") {
				if hasTag(m, orItem) {
					isMatched = true
					break
				}
			}

			if !isMatched {
				return false
			}
		default:
			if !hasTag(m, item.Tag) {
				return false
			}
		}
	}

	return true
}

// hasTag is true if tag is the UD part of speech or one of the features of
// the token. Features are joined with '|', so '/' is the OR operator.
func hasTag(m conllu.MorphParams, tag string) bool {
	if tag == m.POS {
		return true
	}

	for _, f := range strings.Split(m.Tags, "|") {
		if f == tag {
			return true
		}
	}

	return false
}

func separator(field string) string {
	if strings.Contains(field, "+") {
		return "+"
	}

	if strings.Contains(field, "/") {
		return "/"
	}

	return ""
}
