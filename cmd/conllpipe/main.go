package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags "-X main.BuildTag=..."
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "conllpipe: %v\n", err)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:        "conllpipe",
		Usage:       "segment, annotate and write a corpus of Russian news articles as CONLL-U",
		Writer:      ui.Out,
		ErrWriter:   ui.Err,
		HideVersion: true,
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check the layout of a corpus directory",
				ArgsUsage: "<dir>",
				Action: func(c *cli.Context) error {
					dir, err := requiredArg(c, 0, "dir")
					if err != nil {
						return err
					}
					return validateCommand(dir, ui)
				},
			},
			{
				Name:      "run",
				Usage:     "run the basic or advanced pipeline over a corpus",
				ArgsUsage: "[dir]",
				Flags:     runFlags(),
				Action: func(c *cli.Context) error {
					return runCommand(runOptions(c), ui)
				},
			},
			{
				Name:      "show",
				Usage:     "print a processed article or one of its sentences",
				ArgsUsage: "<out-dir> <id> [sent]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "print JSON instead of a table"},
					&cli.BoolFlag{Name: "pos", Usage: "read the CONLL-U file without tags"},
					&cli.BoolFlag{Name: "color", Usage: "color the table"},
				},
				Action: func(c *cli.Context) error {
					opts, err := showOptions(c)
					if err != nil {
						return err
					}
					return showCommand(opts, ui)
				},
			},
			{
				Name:      "stat",
				Usage:     "print token statistics of one or all processed articles",
				ArgsUsage: "<out-dir> [id]",
				Action: func(c *cli.Context) error {
					opts, err := statOptions(c)
					if err != nil {
						return err
					}
					return statCommand(opts, ui)
				},
			},
			{
				Name:      "inspect",
				Usage:     "browse processed articles interactively",
				ArgsUsage: "<out-dir>",
				Action: func(c *cli.Context) error {
					dir, err := requiredArg(c, 0, "out-dir")
					if err != nil {
						return err
					}
					return inspectCommand(dir, ui)
				},
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
