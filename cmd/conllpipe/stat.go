package main

import (
	"github.com/revelaction/conllpipe/render"
	"github.com/revelaction/conllpipe/stat"
	"github.com/revelaction/conllpipe/storage/filesystem"
)

func statCommand(opts StatOptions, ui UI) error {
	store := filesystem.NewArticleStore(opts.Dir)

	var ids []int
	if opts.Id != nil {
		ids = []int{*opts.Id}
	} else {
		var err error
		if ids, err = store.ConlluIds(true); err != nil {
			return err
		}
	}

	hdl := stat.NewHandler()
	for _, id := range ids {
		sentences, err := store.ReadConllu(id, true)
		if err != nil {
			return err
		}
		hdl.Aggregate(sentences)
	}

	return render.Stats(ui.Out, hdl.Get())
}
