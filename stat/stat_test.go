package stat

import (
	"testing"

	"github.com/revelaction/conllpipe/conllu"
)

func sentence(position int, morphs ...conllu.MorphParams) *conllu.Sentence {
	tokens := make([]*conllu.Token, len(morphs))
	for i, m := range morphs {
		tokens[i] = conllu.NewToken("w")
		if m != (conllu.MorphParams{}) {
			tokens[i].SetMorphParams(m)
		}
	}
	return conllu.NewSentence(position, "w", tokens)
}

func TestAggregate(t *testing.T) {
	noun := conllu.MorphParams{Lemma: "мама", POS: "NOUN"}
	verb := conllu.MorphParams{Lemma: "мыть", POS: "VERB"}

	h := NewHandler()
	h.Aggregate([]*conllu.Sentence{
		sentence(0, noun, verb, noun),
		sentence(1, conllu.UnknownMorph, conllu.MorphParams{}),
	})
	h.Aggregate([]*conllu.Sentence{sentence(0, verb, verb)})

	st := h.Get()

	if st.NumSentences != 3 {
		t.Errorf("expected 3 sentences, got %d", st.NumSentences)
	}
	if st.NumTokens != 7 {
		t.Errorf("expected 7 tokens, got %d", st.NumTokens)
	}
	if st.NumAnnotated != 6 {
		t.Errorf("expected 6 annotated tokens, got %d", st.NumAnnotated)
	}
	if st.TokensPerSentenceMean != 2 {
		t.Errorf("expected mean 2, got %d", st.TokensPerSentenceMean)
	}
	if st.TokensPerSentenceDis[2] != 2 || st.TokensPerSentenceDis[3] != 1 {
		t.Errorf("unexpected distribution %v", st.TokensPerSentenceDis)
	}

	pos := st.SortedPOS()
	want := []POSCount{{"VERB", 3}, {"NOUN", 2}, {"X", 1}}
	if len(pos) != len(want) {
		t.Fatalf("expected %v, got %v", want, pos)
	}
	for i := range want {
		if pos[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], pos[i])
		}
	}

	lengths := st.SortedLengths()
	if len(lengths) != 2 || lengths[0] != 2 || lengths[1] != 3 {
		t.Errorf("unexpected lengths %v", lengths)
	}
}

func TestAggregateEmpty(t *testing.T) {
	h := NewHandler()
	h.Aggregate(nil)

	st := h.Get()
	if st.NumSentences != 0 || st.TokensPerSentenceMean != 0 {
		t.Errorf("unexpected stats %+v", st)
	}
}
