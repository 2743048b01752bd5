// Package query is an interactive inspector of processed CONLL-U files.
package query

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/match"
	"github.com/revelaction/conllpipe/render"
	"github.com/revelaction/conllpipe/stat"
	"github.com/revelaction/conllpipe/storage"
)

// ErrQuit is returned by Execute for the quit command.
var ErrQuit = errors.New("quit")

type command struct {
	name string
	args string
	desc string
}

var commands = []command{
	{"ls", "", "list the processed articles"},
	{"show", "<id> [sent]", "print an article or one sentence as a table"},
	{"json", "<id> [sent]", "print an article or one sentence as JSON"},
	{"stat", "<id>", "print the statistics of an article"},
	{"find", "<expr>", "print the sentences matching lemmas and tags, e.g. мыть 2 NOUN"},
	{"help", "", "print this help"},
	{"quit", "", "leave the inspector"},
}

type Handler struct {
	Repo storage.ConlluReader

	// IncludeTags selects the morphological files over the POS-less ones
	IncludeTags bool

	Out      io.Writer
	Renderer *render.TableRenderer
}

func NewHandler(repo storage.ConlluReader, out io.Writer) *Handler {
	return &Handler{
		Repo:        repo,
		IncludeTags: true,
		Out:         out,
		Renderer:    render.NewTableRenderer(out),
	}
}

func (h *Handler) Run() error {
	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, Ctrl+F: Toggle color, 🔧 quit")

	ids, err := h.Repo.ConlluIds(h.IncludeTags)
	if err != nil {
		return err
	}

	// initialize prompt history
	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer(ids),
			prompt.OptionTitle("conllpipe inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasColor = !h.Renderer.HasColor
					fmt.Fprintf(h.Out, "Color set to %t\n", h.Renderer.HasColor)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.HasPrefix = !h.Renderer.HasPrefix
					fmt.Fprintf(h.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		history = append(history, in)

		err := h.Execute(in)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
		}
	}
}

// Execute runs one inspector command line.
func (h *Handler) Execute(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}

	switch cmd, args := fields[0], fields[1:]; cmd {
	case "quit", "exit":
		return ErrQuit
	case "help":
		return h.help()
	case "ls":
		return h.list()
	case "show":
		sentences, err := h.sentences(args)
		if err != nil {
			return err
		}
		return h.Renderer.Render(sentences)
	case "json":
		sentences, err := h.sentences(args)
		if err != nil {
			return err
		}
		return render.NewJSONRenderer(h.Out).Render(sentences)
	case "stat":
		if len(args) != 1 {
			return errors.New("usage: stat <id>")
		}
		sentences, err := h.sentences(args)
		if err != nil {
			return err
		}
		st := stat.NewHandler()
		st.Aggregate(sentences)
		return render.Stats(h.Out, st.Get())
	case "find":
		return h.find(args)
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (h *Handler) help() error {
	for _, c := range commands {
		if _, err := fmt.Fprintf(h.Out, "%-5s %-12s %s\n", c.name, c.args, c.desc); err != nil {
			return err
		}
	}
	return nil
}

// find prints every sentence of every article matching the expression,
// one per line, matched words highlighted.
func (h *Handler) find(args []string) error {
	expr, err := match.Parse(args)
	if err != nil {
		return err
	}

	ids, err := h.Repo.ConlluIds(h.IncludeTags)
	if err != nil {
		return err
	}

	matcher := match.NewMatcher(expr)
	num := 0
	for _, id := range ids {
		sentences, err := h.Repo.ReadConllu(id, h.IncludeTags)
		if err != nil {
			return err
		}

		for _, sm := range matcher.Match(id, sentences) {
			num++
			line := render.Highlight(sm.Sentence, sm.Tokens(), h.Renderer.HasColor)
			if _, err := fmt.Fprintf(h.Out, "[%3d %3d] ✍  %s\n", sm.ArticleId, sm.Sentence.Position(), line); err != nil {
				return err
			}
		}
	}

	_, err = fmt.Fprintf(h.Out, "%d sentences\n", num)
	return err
}

func (h *Handler) list() error {
	ids, err := h.Repo.ConlluIds(h.IncludeTags)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := fmt.Fprintln(h.Out, id); err != nil {
			return err
		}
	}
	return nil
}

// sentences reads the article in args[0], restricted to the sentence
// position in args[1] if given.
func (h *Handler) sentences(args []string) ([]*conllu.Sentence, error) {
	if len(args) == 0 || len(args) > 2 {
		return nil, errors.New("expected <id> [sent]")
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid article id %q", args[0])
	}

	sentences, err := h.Repo.ReadConllu(id, h.IncludeTags)
	if err != nil {
		return nil, err
	}

	if len(args) == 1 {
		return sentences, nil
	}

	pos, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("invalid sentence %q", args[1])
	}

	s, err := SelectSentence(sentences, pos)
	if err != nil {
		return nil, fmt.Errorf("article %d: %w", id, err)
	}

	return []*conllu.Sentence{s}, nil
}

// SelectSentence returns the sentence with the given position.
func SelectSentence(sentences []*conllu.Sentence, pos int) (*conllu.Sentence, error) {
	for _, s := range sentences {
		if s.Position() == pos {
			return s, nil
		}
	}

	return nil, fmt.Errorf("no sentence %d (%d sentences)", pos, len(sentences))
}

func (h *Handler) completer(ids []int) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		return suggest(in.TextBeforeCursor(), ids)
	}
}

// suggest completes command names first, then article ids.
func suggest(befCursor string, ids []int) (s []prompt.Suggest) {
	// empty line
	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		for _, c := range commands {
			if strings.HasPrefix(c.name, tokens[0]) {
				s = append(s, prompt.Suggest{Text: c.name, Description: c.desc})
			}
		}
		return s
	}

	if len(tokens) != 2 {
		return s
	}

	switch tokens[0] {
	case "show", "json", "stat":
	default:
		return s
	}

	for _, id := range ids {
		text := strconv.Itoa(id)
		if strings.HasPrefix(text, tokens[1]) {
			s = append(s, prompt.Suggest{Text: text, Description: "🔖 article " + text})
		}
	}

	return s
}
