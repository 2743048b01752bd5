package analyzer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseMystemOutput(t *testing.T) {
	out := `{"analysis":[{"lex":"мыть","gr":"V,несов,пе=прош,ед,изъяв,жен"},{"lex":"мыло","gr":"S,сред,неод=род,ед"}],"text":"мыла"}
{"text":"\n"}
`
	a, err := parseMystemOutput([]byte(out))
	if err != nil {
		t.Fatal(err)
	}

	if a.Lemma != "мыть" || a.Tag != "V,несов,пе=прош,ед,изъяв,жен" {
		t.Errorf("unexpected analysis %+v", a)
	}
}

func TestParseMystemOutputNoAnalysis(t *testing.T) {
	out := `{"analysis":[],"text":"qwzx"}
{"text":"\n"}
`
	if _, err := parseMystemOutput([]byte(out)); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected ErrNoAnalysis, got %v", err)
	}

	if _, err := parseMystemOutput([]byte("{broken")); err == nil || errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected decoding error, got %v", err)
	}
}

func TestMystemAnalyze(t *testing.T) {
	m := NewMystem("mystem", 0)

	var gotStdin, gotName string
	var gotArgs []string
	m.run = func(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
		gotStdin, gotName, gotArgs = stdin, name, args
		return []byte(`{"analysis":[{"lex":"мама","gr":"S,жен,од=им,ед"}],"text":"мама"}`), nil
	}

	a, err := m.Analyze("мама")
	if err != nil {
		t.Fatal(err)
	}
	if a.Lemma != "мама" || a.Tag != "S,жен,од=им,ед" {
		t.Errorf("unexpected analysis %+v", a)
	}
	if gotStdin != "мама\n" || gotName != "mystem" || !reflect.DeepEqual(gotArgs, mystemArgs) {
		t.Errorf("unexpected invocation %q %q %v", gotStdin, gotName, gotArgs)
	}

	if _, err := m.Analyze(" "); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected ErrNoAnalysis for blank word, got %v", err)
	}
}

func TestMystemAnalyzeRunError(t *testing.T) {
	m := NewMystem("mystem", 0)
	m.run = func(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
		return nil, errors.New("boom")
	}

	_, err := m.Analyze("мама")
	if err == nil || errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected run error, got %v", err)
	}
}

func TestPymorphyAnalyze(t *testing.T) {
	p := NewPymorphy("python3", "parse_word.py", 0)
	p.run = func(ctx context.Context, stdin string, name string, args ...string) ([]byte, error) {
		if name != "python3" || !reflect.DeepEqual(args, []string{"parse_word.py", "мамы"}) {
			t.Errorf("unexpected invocation %q %v", name, args)
		}
		return []byte("мама NOUN,anim,femn sing,gent\n"), nil
	}

	a, err := p.Analyze("мамы")
	if err != nil {
		t.Fatal(err)
	}
	if a.Lemma != "мама" || a.Tag.POS != "NOUN" || a.Tag.Case != "gent" || a.Tag.Number != "sing" {
		t.Errorf("unexpected analysis %+v", a)
	}
}

func TestParsePymorphyOutput(t *testing.T) {
	if _, err := parsePymorphyOutput("\n"); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected ErrNoAnalysis, got %v", err)
	}
	if _, err := parsePymorphyOutput("мама"); err == nil {
		t.Error("expected error for missing tag")
	}
}

func TestLexicon(t *testing.T) {
	data := "# form\tlemma\ttag\n" +
		"мама\tмама\tS,жен,од=им,ед\n" +
		"\n" +
		"Мыла\tмыть\tV,несов,пе=прош,ед,изъяв,жен\n" +
		"мыла\tмыло\tS,сред,неод=род,ед\n"

	lx, err := ParseLexicon(strings.NewReader(data), func(s string) string { return s })
	if err != nil {
		t.Fatal(err)
	}

	if lx.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", lx.Len())
	}

	a, err := lx.Analyze("МЫЛА")
	if err != nil {
		t.Fatal(err)
	}
	if a.Lemma != "мыть" {
		t.Errorf("expected first entry to win, got %+v", a)
	}

	if _, err := lx.Analyze("раму"); !errors.Is(err, ErrNoAnalysis) {
		t.Errorf("expected ErrNoAnalysis, got %v", err)
	}
}

func TestLexiconMalformed(t *testing.T) {
	_, err := ParseLexicon(strings.NewReader("мама\tмама\n"), func(s string) string { return s })
	if err == nil {
		t.Fatal("expected error for line with two fields")
	}
}

func TestNewOpenCorporaLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.tsv")
	if err := os.WriteFile(path, []byte("раму\tрама\tNOUN,inan,femn sing,accs\n"), 0644); err != nil {
		t.Fatal(err)
	}

	lx, err := NewOpenCorporaLexicon(path)
	if err != nil {
		t.Fatal(err)
	}

	a, err := lx.Analyze("раму")
	if err != nil {
		t.Fatal(err)
	}
	if a.Tag.POS != "NOUN" || a.Tag.Case != "accs" {
		t.Errorf("unexpected tag %+v", a.Tag)
	}

	if _, err := NewMystemLexicon(filepath.Join(t.TempDir(), "missing.tsv")); err == nil {
		t.Error("expected error for missing file")
	}
}
