package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/revelaction/conllpipe/conllu"
)

func testSentence() *conllu.Sentence {
	mama := conllu.NewToken("Мама")
	mama.SetMorphParams(conllu.MorphParams{Lemma: "мама", POS: "NOUN", Tags: "Case=Nom"})
	dash := conllu.NewToken("-")
	dash.SetMorphParams(conllu.UnknownMorph)

	return conllu.NewSentence(4, "Мама - Спит", []*conllu.Token{mama, dash, conllu.NewToken("Спит")})
}

func TestJSONRendererRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render(nil); err != nil {
		t.Fatal(err)
	}

	if buf.String() != "[]\n" {
		t.Fatalf("expected empty array, got %q", buf.String())
	}
}

func TestJSONRendererRenderOneSentence(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONRenderer(&buf)
	if err := r.Render([]*conllu.Sentence{testSentence()}); err != nil {
		t.Fatal(err)
	}

	var results []jsonSentence
	if err := json.Unmarshal(buf.Bytes(), &results); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	s := results[0]
	if s.Position != 4 || s.Text != "Мама - Спит" {
		t.Errorf("unexpected sentence %+v", s)
	}

	if len(s.Tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(s.Tokens))
	}

	want := []jsonToken{
		{Id: 1, Form: "Мама", Lemma: "мама", UPOS: "NOUN", Feats: "Case=Nom"},
		{Id: 2, Form: "-", Lemma: "_", UPOS: "X", Feats: "_"},
		{Id: 3, Form: "Спит", Lemma: "спит", UPOS: "_", Feats: "_"},
	}
	for i := range want {
		if s.Tokens[i] != want[i] {
			t.Errorf("token %d: expected %+v, got %+v", i, want[i], s.Tokens[i])
		}
	}
}
