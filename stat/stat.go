// Package stat aggregates token statistics over processed sentences.
package stat

import (
	"sort"

	"github.com/revelaction/conllpipe/conllu"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumAnnotated          int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// UD part of speech → number of tokens
	POS map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		POS:                  map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the sentences to the statistics. It can be called once
// per article to aggregate a whole corpus.
func (h *Handler) Aggregate(sentences []*conllu.Sentence) {
	h.stats.NumSentences += len(sentences)

	for _, s := range sentences {
		tokens := s.Tokens()
		h.stats.NumTokens += len(tokens)
		h.stats.TokensPerSentenceDis[len(tokens)]++

		for _, tk := range tokens {
			if !tk.HasMorphParams() {
				continue
			}
			h.stats.NumAnnotated++

			if pos := tk.MorphParams().POS; pos != "" {
				h.stats.POS[pos]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}

// POSCount is the number of tokens of a part of speech.
type POSCount struct {
	POS   string
	Count int
}

// SortedPOS returns the part of speech counts, most frequent first, ties
// by name.
func (s Stats) SortedPOS() []POSCount {
	counts := make([]POSCount, 0, len(s.POS))
	for pos, n := range s.POS {
		counts = append(counts, POSCount{POS: pos, Count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].POS < counts[j].POS
	})

	return counts
}

// SortedLengths returns the distinct sentence lengths in ascending order.
func (s Stats) SortedLengths() []int {
	lengths := make([]int, 0, len(s.TokensPerSentenceDis))
	for l := range s.TokensPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	return lengths
}
