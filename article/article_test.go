package article

import (
	"errors"
	"testing"

	"github.com/revelaction/conllpipe/conllu"
)

func TestIDFromPath(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"1_raw.txt", 1},
		{"/tmp/corpus/12_raw.txt", 12},
		{"corpus/105_meta.json", 105},
		{"007_raw.txt", 7},
	}

	for _, tt := range tests {
		got, err := IDFromPath(tt.path)
		if err != nil {
			t.Errorf("IDFromPath(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IDFromPath(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestIDFromPathInvalid(t *testing.T) {
	for _, path := range []string{"raw.txt", "a1_raw.txt", "0_raw.txt", "12raw.txt", "dir/1_x/raw.txt"} {
		if _, err := IDFromPath(path); !errors.Is(err, ErrFileName) {
			t.Errorf("IDFromPath(%q): expected ErrFileName, got %v", path, err)
		}
	}
}

func TestFileNames(t *testing.T) {
	if RawFileName(3) != "3_raw.txt" || MetaFileName(3) != "3_meta.json" || CleanedFileName(3) != "3_cleaned.txt" {
		t.Error("unexpected file names")
	}

	if ConlluFileName(3, true) != "3_morphological_conllu.conllu" || ConlluFileName(3, false) != "3_pos_conllu.conllu" {
		t.Error("unexpected conllu file names")
	}

	if !IsRaw("x/3_raw.txt") || IsRaw("3_cleaned.txt") || !IsMeta("3_meta.json") {
		t.Error("unexpected classification")
	}
}

func TestArticleCleanedText(t *testing.T) {
	a := New(1, "Мама мыла раму. — !")
	a.SetConlluSentences([]*conllu.Sentence{
		conllu.NewSentence(0, "Мама мыла раму.", []*conllu.Token{
			conllu.NewToken("Мама"), conllu.NewToken("мыла"), conllu.NewToken("раму."),
		}),
		conllu.NewSentence(1, "— !", []*conllu.Token{conllu.NewToken("—"), conllu.NewToken("!")}),
	})

	if got := a.CleanedText(); got != "мама мыла раму\n" {
		t.Errorf("got %q", got)
	}
}
