package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Mystem runs the Yandex mystem binary, one word per input line. Tags are
// flat strings such as "S,жен,од=им,ед".
type Mystem struct {
	bin string
	process
}

var _ BatchAnalyzer[string] = (*Mystem)(nil)

// NewMystem returns a Mystem analyzer running bin. A zero timeout means no
// timeout.
func NewMystem(bin string, timeout time.Duration) *Mystem {
	return &Mystem{
		bin:     bin,
		process: process{run: execRunner, timeout: timeout},
	}
}

var mystemArgs = []string{"-n", "-i", "-d", "--format", "json", "-e", "utf-8"}

func (m *Mystem) Analyze(word string) (Analysis[string], error) {
	if strings.TrimSpace(word) == "" {
		return Analysis[string]{}, ErrNoAnalysis
	}

	out, err := m.exec(word+"\n", m.bin, mystemArgs...)
	if err != nil {
		return Analysis[string]{}, err
	}

	return parseMystemOutput(out)
}

// AnalyzeAll sends every word to one mystem process and keeps the first
// analysis of each.
func (m *Mystem) AnalyzeAll(words []string) (map[string]Analysis[string], error) {
	results := map[string]Analysis[string]{}
	if len(words) == 0 {
		return results, nil
	}

	out, err := m.exec(strings.Join(words, "\n")+"\n", m.bin, mystemArgs...)
	if err != nil {
		return nil, err
	}

	wanted := map[string]bool{}
	for _, w := range words {
		wanted[w] = true
	}

	dec := json.NewDecoder(bytes.NewReader(out))
	for {
		var w mystemWord
		err := dec.Decode(&w)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("JSON decoding error in mystem output: %w", err)
		}

		if !wanted[w.Text] {
			continue
		}
		if _, ok := results[w.Text]; ok {
			continue
		}
		if len(w.Analysis) > 0 && w.Analysis[0].Gr != "" {
			results[w.Text] = Analysis[string]{Lemma: w.Analysis[0].Lex, Tag: w.Analysis[0].Gr}
		}
	}

	return results, nil
}

type mystemWord struct {
	Text     string `json:"text"`
	Analysis []struct {
		Lex string `json:"lex"`
		Gr  string `json:"gr"`
	} `json:"analysis"`
}

// parseMystemOutput decodes the JSON lines of mystem and returns the first
// analysis found.
func parseMystemOutput(out []byte) (Analysis[string], error) {
	dec := json.NewDecoder(bytes.NewReader(out))

	for {
		var w mystemWord
		err := dec.Decode(&w)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Analysis[string]{}, fmt.Errorf("JSON decoding error in mystem output: %w", err)
		}

		if len(w.Analysis) > 0 && w.Analysis[0].Gr != "" {
			return Analysis[string]{Lemma: w.Analysis[0].Lex, Tag: w.Analysis[0].Gr}, nil
		}
	}

	return Analysis[string]{}, ErrNoAnalysis
}
