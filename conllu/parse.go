package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError reports a malformed line of a CONLL-U document.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("conllu: line %d: %s", e.Line, e.Msg)
}

// Parse reads the sentence blocks of a CONLL-U document. Multiword ranges
// (1-2) and empty nodes (1.1) are skipped. A token whose lemma is its
// lower-cased form and whose UPOS and FEATS are empty is returned without
// annotation, so that Parse reverses ConlluText.
func Parse(r io.Reader) ([]*Sentence, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		sentences []*Sentence
		tokens    []*Token
		position  = -1
		text      string
		inBlock   bool
		lineNum   int
	)

	flush := func() {
		if !inBlock {
			return
		}
		if position < 0 {
			position = len(sentences)
		}
		sentences = append(sentences, NewSentence(position, text, tokens))
		tokens, position, text, inBlock = nil, -1, "", false
	}

	for sc.Scan() {
		lineNum++
		line := strings.TrimRight(sc.Text(), "\r")

		if line == "" {
			flush()
			continue
		}

		inBlock = true

		if strings.HasPrefix(line, "#") {
			switch {
			case strings.HasPrefix(line, sentIdPrefix):
				id, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, sentIdPrefix)))
				if err != nil {
					return nil, &ParseError{Line: lineNum, Msg: "sent_id is not an integer"}
				}
				position = id
			case strings.HasPrefix(line, textPrefix):
				text = strings.TrimPrefix(line, textPrefix)
			}
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != numColumns {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("expected %d columns, got %d", numColumns, len(fields))}
		}

		if strings.ContainsAny(fields[0], "-.") {
			continue
		}

		id, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("token id %q is not an integer", fields[0])}
		}
		if id != len(tokens)+1 {
			return nil, &ParseError{Line: lineNum, Msg: fmt.Sprintf("token id %d out of sequence", id)}
		}

		tokens = append(tokens, parseToken(fields))
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}

	flush()
	return sentences, nil
}

func parseToken(fields []string) *Token {
	form, lemma, upos, feats := fields[1], fields[2], fields[3], fields[5]
	tk := NewToken(form)

	if upos == Placeholder && feats == Placeholder && lemma == strings.ToLower(form) {
		return tk
	}

	tk.SetMorphParams(MorphParams{
		Lemma: lemma,
		POS:   fromPlaceholder(upos),
		Tags:  fromPlaceholder(feats),
	})
	return tk
}

func fromPlaceholder(s string) string {
	if s == Placeholder {
		return ""
	}
	return s
}
