package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"
)

// Option structs for subcommands that have flags
type RunOptions struct {
	ConfigPath string
	Dir        string

	// empty values keep the configuration file value
	Out               string
	Advanced          bool
	Analyzer          string
	Lexicon           string
	LexiconVocabulary string
	Segmenter         string
	PunktModel        string
	LogLevel          string

	NoProgress bool
}

type ShowOptions struct {
	Dir   string
	Id    int
	Sent  *int // nil = not set
	JSON  bool
	POS   bool
	Color bool
}

type StatOptions struct {
	Dir string
	Id  *int // nil = all articles
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory"},
		&cli.BoolFlag{Name: "advanced", Usage: "annotate tokens and write CONLL-U"},
		&cli.StringFlag{Name: "analyzer", Usage: "mystem, pymorphy or lexicon"},
		&cli.StringFlag{Name: "lexicon", Usage: "tab-separated form, lemma, tag file"},
		&cli.StringFlag{Name: "lexicon-vocabulary", Usage: "tag vocabulary of the lexicon: mystem or opencorpora"},
		&cli.StringFlag{Name: "segmenter", Usage: "rule or punkt"},
		&cli.StringFlag{Name: "punkt-model", Usage: "punkt training data (JSON)"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.BoolFlag{Name: "no-progress", Usage: "do not show the progress bar"},
	}
}

func runOptions(c *cli.Context) RunOptions {
	return RunOptions{
		ConfigPath:        c.String("config"),
		Dir:               c.Args().First(),
		Out:               c.String("out"),
		Advanced:          c.Bool("advanced"),
		Analyzer:          c.String("analyzer"),
		Lexicon:           c.String("lexicon"),
		LexiconVocabulary: c.String("lexicon-vocabulary"),
		Segmenter:         c.String("segmenter"),
		PunktModel:        c.String("punkt-model"),
		LogLevel:          c.String("log-level"),
		NoProgress:        c.Bool("no-progress"),
	}
}

func showOptions(c *cli.Context) (ShowOptions, error) {
	opts := ShowOptions{
		JSON:  c.Bool("json"),
		POS:   c.Bool("pos"),
		Color: c.Bool("color"),
	}

	var err error
	if opts.Dir, err = requiredArg(c, 0, "out-dir"); err != nil {
		return opts, err
	}

	if opts.Id, err = intArg(c, 1, "id"); err != nil {
		return opts, err
	}

	if c.NArg() > 2 {
		sent, err := intArg(c, 2, "sent")
		if err != nil {
			return opts, err
		}
		opts.Sent = &sent
	}

	return opts, nil
}

func statOptions(c *cli.Context) (StatOptions, error) {
	var opts StatOptions

	var err error
	if opts.Dir, err = requiredArg(c, 0, "out-dir"); err != nil {
		return opts, err
	}

	if c.NArg() > 1 {
		id, err := intArg(c, 1, "id")
		if err != nil {
			return opts, err
		}
		opts.Id = &id
	}

	return opts, nil
}

func requiredArg(c *cli.Context, n int, name string) (string, error) {
	if c.NArg() <= n {
		return "", fmt.Errorf("missing argument <%s>", name)
	}

	return c.Args().Get(n), nil
}

func intArg(c *cli.Context, n int, name string) (int, error) {
	s, err := requiredArg(c, n, name)
	if err != nil {
		return 0, err
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid <%s> %q: must be a number", name, s)
	}

	return v, nil
}
