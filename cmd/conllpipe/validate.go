package main

import (
	"fmt"

	"github.com/revelaction/conllpipe/corpus"
	"github.com/revelaction/conllpipe/storage/filesystem"
)

func validateCommand(dir string, ui UI) error {
	// nothing is written, the output directory is irrelevant
	m, err := corpus.New(dir, filesystem.NewArticleStore(""))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(ui.Out, "✔ %s: %d articles\n", m.Path(), m.Len())
	return err
}
