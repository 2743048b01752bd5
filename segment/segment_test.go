package segment

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRuleSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple",
			text: "Мама мыла раму. Папа читал газету!",
			want: []string{"Мама мыла раму.", "Папа читал газету!"},
		},
		{
			name: "no space after dot",
			text: "Остались считаные дни.Майских праздников ждут.",
			want: []string{"Остались считаные дни.Майских праздников ждут."},
		},
		{
			name: "closing quote",
			text: "Он сказал: «Хватит!» Все замолчали.",
			want: []string{"Он сказал: «Хватит!»", "Все замолчали."},
		},
		{
			name: "lower case continuation",
			text: "См. выше и т. д. в тексте.",
			want: []string{"См. выше и т. д. в тексте."},
		},
		{
			name: "opening quote",
			text: "Конец. «Давайте после майских» — говорят все.",
			want: []string{"Конец.", "«Давайте после майских» — говорят все."},
		},
		{
			name: "ellipsis and digits",
			text: "Ждали долго… 2023 год начался.",
			want: []string{"Ждали долго…", "2023 год начался."},
		},
		{
			name: "paragraphs",
			text: "Заголовок\n\nПервый абзац. Второе предложение\n",
			want: []string{"Заголовок", "Первый абзац.", "Второе предложение"},
		},
		{
			name: "blank",
			text: "  \n\n ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rule{}.Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	sp, err := New("rule", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := sp.(Rule); !ok {
		t.Errorf("expected Rule splitter, got %T", sp)
	}

	if _, err := New("stanza", ""); err == nil {
		t.Error("expected error for unknown segmenter")
	}

	if _, err := New("punkt", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing punkt model")
	}
}

func TestNewPunktBadModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewPunkt(path); err == nil {
		t.Error("expected error for malformed punkt model")
	}
}
