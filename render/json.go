package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/conllpipe/conllu"
)

// JSONRenderer writes sentences as a JSON array to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

type jsonSentence struct {
	Position int         `json:"position"`
	Text     string      `json:"text"`
	Tokens   []jsonToken `json:"tokens"`
}

type jsonToken struct {
	Id    int    `json:"id"`
	Form  string `json:"form"`
	Lemma string `json:"lemma"`
	UPOS  string `json:"upos"`
	Feats string `json:"feats"`
}

// Render serializes the sentences as a JSON array. An empty input
// renders as [].
func (r *JSONRenderer) Render(sentences []*conllu.Sentence) error {
	out := make([]jsonSentence, 0, len(sentences))

	for _, s := range sentences {
		js := jsonSentence{Position: s.Position(), Text: s.Text(), Tokens: []jsonToken{}}
		for _, tk := range s.Tokens() {
			lemma, pos, feats := tk.Columns(true)
			js.Tokens = append(js.Tokens, jsonToken{
				Id:    tk.Position(),
				Form:  tk.Text(),
				Lemma: lemma,
				UPOS:  pos,
				Feats: feats,
			})
		}
		out = append(out, js)
	}

	return json.NewEncoder(r.W).Encode(out)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
