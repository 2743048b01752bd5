package main

import (
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/query"
	"github.com/revelaction/conllpipe/render"
	"github.com/revelaction/conllpipe/storage/filesystem"
)

func showCommand(opts ShowOptions, ui UI) error {
	store := filesystem.NewArticleStore(opts.Dir)

	sentences, err := store.ReadConllu(opts.Id, !opts.POS)
	if err != nil {
		return err
	}

	if opts.Sent != nil {
		s, err := query.SelectSentence(sentences, *opts.Sent)
		if err != nil {
			return err
		}
		sentences = []*conllu.Sentence{s}
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Render(sentences)
	}

	r := render.NewTableRenderer(ui.Out)
	r.HasColor = opts.Color
	return r.Render(sentences)
}
