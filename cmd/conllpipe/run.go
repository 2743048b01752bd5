package main

import (
	"fmt"
	"sync/atomic"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/conllpipe/config"
	"github.com/revelaction/conllpipe/corpus"
	"github.com/revelaction/conllpipe/logger"
	"github.com/revelaction/conllpipe/pipeline"
	"github.com/revelaction/conllpipe/segment"
	"github.com/revelaction/conllpipe/storage/filesystem"
)

func runCommand(opts RunOptions, ui UI) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, ui.Err)
	log.Debug("configuration loaded", "config", cfg.String())

	store := filesystem.NewArticleStore(cfg.Corpus.Output)

	m, err := corpus.New(cfg.Corpus.Path, store)
	if err != nil {
		return err
	}

	sp, err := segment.New(cfg.Segmenter.Kind, cfg.Segmenter.PunktModel)
	if err != nil {
		return err
	}

	var (
		runner    pipeline.Runner
		onArticle *pipeline.ProgressFunc
	)

	switch cfg.Pipeline.Mode {
	case config.ModeAdvanced:
		an, err := newAnnotator(cfg)
		if err != nil {
			return err
		}
		p := pipeline.NewAdvanced(m, sp, store, an, log)
		runner, onArticle = p, &p.OnArticle
	default:
		p := pipeline.NewBasic(m, sp, store, log)
		runner, onArticle = p, &p.OnArticle
	}

	log.Info("pipeline started", "mode", cfg.Pipeline.Mode, "articles", m.Len(), "output", store.OutDir())

	if !opts.NoProgress {
		stop := startProgress(m.Len(), onArticle, ui)
		err = runner.Run()
		stop()
	} else {
		err = runner.Run()
	}

	failed := numFailed(err)
	_, _ = fmt.Fprintf(ui.Out, "✍  %d of %d articles written to %s\n", m.Len()-failed, m.Len(), store.OutDir())

	if err != nil {
		return fmt.Errorf("%d articles failed:\n%w", failed, err)
	}

	return nil
}

// loadConfig reads the configuration file, if any, and applies the flags
// over it.
func loadConfig(opts RunOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.LoadConfig(opts.ConfigPath); err != nil {
			return nil, err
		}
	}

	if opts.Dir != "" {
		cfg.Corpus.Path = opts.Dir
	}
	if opts.Out != "" {
		cfg.Corpus.Output = opts.Out
	}
	if opts.Advanced {
		cfg.Pipeline.Mode = config.ModeAdvanced
	}
	if opts.Analyzer != "" {
		cfg.Pipeline.Analyzer = opts.Analyzer
	}
	if opts.Lexicon != "" {
		cfg.Analyzer.Lexicon = opts.Lexicon
	}
	if opts.LexiconVocabulary != "" {
		cfg.Analyzer.LexiconVocabulary = opts.LexiconVocabulary
	}
	if opts.Segmenter != "" {
		cfg.Segmenter.Kind = opts.Segmenter
	}
	if opts.PunktModel != "" {
		cfg.Segmenter.PunktModel = opts.PunktModel
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// startProgress renders a progress bar on the error stream and sets
// onArticle to advance it. The returned func stops the rendering.
func startProgress(total int, onArticle *pipeline.ProgressFunc, ui UI) func() {
	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start() // start rendering

	bar := progress.AddBar(total) // Add a new bar
	bar.AppendCompleted()
	bar.PrependElapsed()

	// Append the article id to the progress bar
	var last atomic.Int64
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return fmt.Sprintf("article %d", last.Load())
	})

	*onArticle = func(done, total, id int) {
		last.Store(int64(id))
		bar.Incr()
	}

	return progress.Stop
}

func numFailed(err error) int {
	if err == nil {
		return 0
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}

	return 1
}
