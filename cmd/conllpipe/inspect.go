package main

import (
	"github.com/revelaction/conllpipe/query"
	"github.com/revelaction/conllpipe/storage/filesystem"
)

func inspectCommand(dir string, ui UI) error {
	// now present the REPL
	h := query.NewHandler(filesystem.NewArticleStore(dir), ui.Out)
	return h.Run()
}
