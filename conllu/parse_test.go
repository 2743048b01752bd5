package conllu

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	s1 := NewSentence(0, "Мама мыла раму.", []*Token{
		NewToken("Мама"),
		NewToken("мыла"),
		NewToken("раму."),
	})
	s1.Tokens()[0].SetMorphParams(MorphParams{Lemma: "мама", POS: "NOUN", Tags: "Animacy=Anim|Case=Nom"})
	s1.Tokens()[1].SetMorphParams(MorphParams{Lemma: "мыть", POS: "VERB"})
	s1.Tokens()[2].SetMorphParams(UnknownMorph)

	s2 := NewSentence(1, "Привет", []*Token{NewToken("Привет")})

	for _, includeTags := range []bool{true, false} {
		doc := Text([]*Sentence{s1, s2}, includeTags)

		parsed, err := Parse(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}

		if len(parsed) != 2 {
			t.Fatalf("expected 2 sentences, got %d", len(parsed))
		}

		if again := Text(parsed, includeTags); again != doc {
			t.Errorf("round trip mismatch (includeTags=%t):\n%s\n---\n%s", includeTags, doc, again)
		}
	}
}

func TestParseRestoresAnnotation(t *testing.T) {
	doc := "# sent_id = 7\n" +
		"# text = Мама пришла\n" +
		"1\tМама\tмама\tNOUN\t_\tCase=Nom\t_\t_\t_\t_\n" +
		"2\tпришла\tпришла\t_\t_\t_\t_\t_\t_\t_\n" +
		"\n"

	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	s := parsed[0]
	if s.Position() != 7 || s.Text() != "Мама пришла" {
		t.Fatalf("unexpected sentence header: %d %q", s.Position(), s.Text())
	}

	first := s.Tokens()[0]
	if !first.HasMorphParams() || first.MorphParams().POS != "NOUN" {
		t.Errorf("expected annotated first token, got %+v", first.MorphParams())
	}

	if s.Tokens()[1].HasMorphParams() {
		t.Error("expected second token without annotation")
	}
}

func TestParseSkipsRangesAndComments(t *testing.T) {
	doc := "# newdoc id = x\n" +
		"# sent_id = 0\n" +
		"1-2\tнадо\t_\t_\t_\t_\t_\t_\t_\t_\n" +
		"1\tна\tна\tADP\t_\t_\t_\t_\t_\t_\n" +
		"2\tдо\tдо\tADP\t_\t_\t_\t_\t_\t_\n"

	parsed, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}

	if len(parsed) != 1 || len(parsed[0].Tokens()) != 2 {
		t.Fatalf("unexpected result %+v", parsed)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		line int
	}{
		{"bad sent id", "# sent_id = abc\n", 1},
		{"few columns", "# sent_id = 0\n1\tслово\n", 2},
		{"bad token id", "a\tb\tc\td\te\tf\tg\th\ti\tj\n", 1},
		{"out of sequence", "2\tb\tc\td\te\tf\tg\th\ti\tj\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if pe.Line != tt.line {
				t.Errorf("expected line %d, got %d", tt.line, pe.Line)
			}
		})
	}
}

func TestIsUPOS(t *testing.T) {
	if !IsUPOS("NOUN") || !IsUPOS("X") {
		t.Error("expected NOUN and X in vocabulary")
	}
	if IsUPOS("S") || IsUPOS("noun") {
		t.Error("unexpected tag accepted")
	}
}
