package segment

import (
	"fmt"
	"os"
	"strings"

	"github.com/neurosnap/sentences"
)

// Punkt splits with a trained Punkt model, e.g. the russian.json training
// data of nltk.
type Punkt struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

var _ Splitter = (*Punkt)(nil)

// NewPunkt loads the Punkt training data at path.
func NewPunkt(path string) (*Punkt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read punkt model: %w", err)
	}

	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load punkt model %s: %w", path, err)
	}

	return &Punkt{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

func (p *Punkt) Split(text string) []string {
	var spans []string
	for _, s := range p.tokenizer.Tokenize(text) {
		spans = appendSpan(spans, s.Text)
	}

	return spans
}

// New returns the splitter named by kind: "rule" or "punkt".
func New(kind, punktModel string) (Splitter, error) {
	switch strings.ToLower(kind) {
	case "", "rule":
		return Rule{}, nil
	case "punkt":
		return NewPunkt(punktModel)
	}

	return nil, fmt.Errorf("unknown segmenter: %s", kind)
}
