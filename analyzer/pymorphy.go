package analyzer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/revelaction/conllpipe/tagconv"
)

// Pymorphy runs a python script that prints one "<normal_form> <tag>" line
// per word passed as argument, the tag in OpenCorpora notation:
//
//	import sys, pymorphy2
//	m = pymorphy2.MorphAnalyzer()
//	for w in sys.argv[1:]:
//	    p = m.parse(w)[0]
//	    print(p.normal_form, p.tag)
type Pymorphy struct {
	python string
	script string
	process
}

var _ BatchAnalyzer[tagconv.OpenCorporaTag] = (*Pymorphy)(nil)

// maxPymorphyArgs bounds the command line of one script run.
const maxPymorphyArgs = 500

func NewPymorphy(python, script string, timeout time.Duration) *Pymorphy {
	return &Pymorphy{
		python:  python,
		script:  script,
		process: process{run: execRunner, timeout: timeout},
	}
}

func (p *Pymorphy) Analyze(word string) (Analysis[tagconv.OpenCorporaTag], error) {
	if strings.TrimSpace(word) == "" {
		return Analysis[tagconv.OpenCorporaTag]{}, ErrNoAnalysis
	}

	results, err := p.AnalyzeAll([]string{word})
	if err != nil {
		return Analysis[tagconv.OpenCorporaTag]{}, err
	}

	a, ok := results[word]
	if !ok {
		return Analysis[tagconv.OpenCorporaTag]{}, ErrNoAnalysis
	}

	return a, nil
}

// AnalyzeAll runs the script once per maxPymorphyArgs words.
func (p *Pymorphy) AnalyzeAll(words []string) (map[string]Analysis[tagconv.OpenCorporaTag], error) {
	results := map[string]Analysis[tagconv.OpenCorporaTag]{}

	for start := 0; start < len(words); start += maxPymorphyArgs {
		chunk := words[start:min(start+maxPymorphyArgs, len(words))]

		args := append([]string{p.script}, chunk...)
		out, err := p.exec("", p.python, args...)
		if err != nil {
			return nil, err
		}

		lines := strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
		if len(lines) != len(chunk) {
			return nil, fmt.Errorf("pymorphy printed %d lines for %d words", len(lines), len(chunk))
		}

		for i, line := range lines {
			a, err := parsePymorphyOutput(line)
			if errors.Is(err, ErrNoAnalysis) {
				continue
			}
			if err != nil {
				return nil, err
			}
			results[chunk[i]] = a
		}
	}

	return results, nil
}

func parsePymorphyOutput(out string) (Analysis[tagconv.OpenCorporaTag], error) {
	words := strings.Fields(out)
	if len(words) == 0 {
		return Analysis[tagconv.OpenCorporaTag]{}, ErrNoAnalysis
	}
	if len(words) < 2 {
		return Analysis[tagconv.OpenCorporaTag]{}, fmt.Errorf("unexpected pymorphy output: %q", out)
	}

	// the tag itself may contain a space: "NOUN,anim,masc sing,nomn"
	return Analysis[tagconv.OpenCorporaTag]{
		Lemma: words[0],
		Tag:   tagconv.ParseOpenCorporaTag(strings.Join(words[1:], " ")),
	}, nil
}
