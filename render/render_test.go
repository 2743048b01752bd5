package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/stat"
)

func TestTableRendererAlignsByDisplayWidth(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(&buf)
	if err := r.Render([]*conllu.Sentence{testSentence()}); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	want := []string{
		" 4 ✍  Мама - Спит",
		"ID  FORM  LEMMA  UPOS  FEATS",
		"1   Мама  мама   NOUN  Case=Nom",
		"2   -     _      X     _",
		"3   Спит  спит   _     _",
	}

	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestTableRendererSeparatesSentences(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(&buf)
	r.HasPrefix = false

	s := conllu.NewSentence(0, "да", []*conllu.Token{conllu.NewToken("да")})
	if err := r.Render([]*conllu.Sentence{s, s}); err != nil {
		t.Fatal(err)
	}

	want := "ID  FORM  LEMMA  UPOS  FEATS\n1   да    да     _     _\n\nID  FORM  LEMMA  UPOS  FEATS\n1   да    да     _     _\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestTableRendererColor(t *testing.T) {
	var buf bytes.Buffer
	r := NewTableRenderer(&buf)
	r.HasColor = true

	if err := r.Render([]*conllu.Sentence{testSentence()}); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), Green256+"NOUN"+Off) {
		t.Errorf("UPOS column not colored: %q", buf.String())
	}
}

func TestStats(t *testing.T) {
	h := stat.NewHandler()
	h.Aggregate([]*conllu.Sentence{testSentence()})

	var buf bytes.Buffer
	if err := Stats(&buf, h.Get()); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"sentences: 1", "tokens:    3 (2 annotated)", "NOUN    1", "X       1"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestHighlight(t *testing.T) {
	s := testSentence()
	matched := []*conllu.Token{s.Tokens()[2]}

	if got := Highlight(s, matched, false); got != "Мама - СПИТ" {
		t.Errorf("unexpected highlight %q", got)
	}

	if got := Highlight(s, matched, true); got != "Мама - "+Green256+"Спит"+Off {
		t.Errorf("unexpected colored highlight %q", got)
	}
}

func TestTokenRowMatchesConllu(t *testing.T) {
	for _, tk := range testSentence().Tokens() {
		row := tokenRow(tk)
		cols := strings.Split(tk.ConlluText(true), "\t")

		if row[2] != cols[2] || row[3] != cols[3] || row[4] != cols[5] {
			t.Errorf("token %q: table %v, CONLL-U %v", tk.Text(), row[2:], cols)
		}
	}
}
