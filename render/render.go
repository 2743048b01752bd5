// Package render prints CONLL-U sentences for humans.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/stat"
)

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// Renderer writes sentences to its writer.
type Renderer interface {
	Render(sentences []*conllu.Sentence) error
}

var tableHeader = []string{"ID", "FORM", "LEMMA", "UPOS", "FEATS"}

// TableRenderer writes one aligned table per sentence. Column widths are
// display widths, so Cyrillic and wide runes line up.
type TableRenderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix writes the sentence id and text above each table
	HasPrefix bool

	PrefixFunc func(*conllu.Sentence) string
}

var _ Renderer = (*TableRenderer)(nil)

func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w, HasPrefix: true}
}

func (r *TableRenderer) Render(sentences []*conllu.Sentence) error {
	for i, s := range sentences {
		if i > 0 {
			if _, err := fmt.Fprintln(r.W); err != nil {
				return err
			}
		}

		if r.HasPrefix {
			if _, err := fmt.Fprintln(r.W, r.buildPrefix(s)); err != nil {
				return err
			}
		}

		for _, line := range r.table(s) {
			if _, err := fmt.Fprintln(r.W, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *TableRenderer) buildPrefix(s *conllu.Sentence) string {
	if r.PrefixFunc != nil {
		return r.PrefixFunc(s)
	}

	return PrefixFuncIconHand(s)
}

func PrefixFuncIconHand(s *conllu.Sentence) string {
	return fmt.Sprintf("%2d ✍  %s", s.Position(), s.Text())
}

// table returns the aligned lines of the sentence table, header first.
func (r *TableRenderer) table(s *conllu.Sentence) []string {
	rows := [][]string{tableHeader}
	for _, tk := range s.Tokens() {
		rows = append(rows, tokenRow(tk))
	}

	widths := make([]int, len(tableHeader))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, len(rows))
	for i, row := range rows {
		var sb strings.Builder
		for j, cell := range row {
			if j > 0 {
				sb.WriteString("  ")
			}

			sb.WriteString(r.color(i, j, cell))

			// no trailing spaces after the last column
			if j < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[j]-runewidth.StringWidth(cell)))
			}
		}
		lines[i] = sb.String()
	}

	return lines
}

func (r *TableRenderer) color(row, col int, cell string) string {
	if !r.HasColor {
		return cell
	}

	switch {
	case row == 0:
		return Grey256 + cell + Off
	case col == 3:
		return Green256 + cell + Off
	}

	return cell
}

// Highlight returns the sentence words joined by spaces, the matched ones
// in upper case, or colored if hasColor.
func Highlight(s *conllu.Sentence, matched []*conllu.Token, hasColor bool) string {
	words := make([]string, len(s.Tokens()))
	for i, tk := range s.Tokens() {
		words[i] = tk.Text()
		for _, m := range matched {
			if m.Position() != tk.Position() {
				continue
			}
			if hasColor {
				words[i] = Green256 + tk.Text() + Off
			} else {
				words[i] = strings.ToUpper(tk.Text())
			}
			break
		}
	}

	return strings.Join(words, " ")
}

func tokenRow(tk *conllu.Token) []string {
	lemma, pos, feats := tk.Columns(true)
	return []string{strconv.Itoa(tk.Position()), tk.Text(), lemma, pos, feats}
}

// Stats writes a corpus or article summary.
func Stats(w io.Writer, st stat.Stats) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "sentences: %d\n", st.NumSentences)
	fmt.Fprintf(&sb, "tokens:    %d (%d annotated)\n", st.NumTokens, st.NumAnnotated)
	fmt.Fprintf(&sb, "mean:      %d tokens per sentence\n", st.TokensPerSentenceMean)

	if len(st.TokensPerSentenceDis) > 0 {
		sb.WriteString("\nlength  sentences\n")
		for _, l := range st.SortedLengths() {
			fmt.Fprintf(&sb, "%6d  %d\n", l, st.TokensPerSentenceDis[l])
		}
	}

	if len(st.POS) > 0 {
		sb.WriteString("\nupos    tokens\n")
		for _, pc := range st.SortedPOS() {
			fmt.Fprintf(&sb, "%-6s  %d\n", pc.POS, pc.Count)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
