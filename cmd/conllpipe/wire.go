package main

import (
	"fmt"

	"github.com/revelaction/conllpipe/analyzer"
	"github.com/revelaction/conllpipe/config"
	"github.com/revelaction/conllpipe/pipeline"
	"github.com/revelaction/conllpipe/tagconv"
)

// newAnnotator couples the configured analyzer with the converter of its
// tag vocabulary.
func newAnnotator(cfg *config.Config) (pipeline.Annotator, error) {
	switch cfg.Pipeline.Analyzer {
	case config.AnalyzerMystem:
		conv, err := mystemConverter(cfg)
		if err != nil {
			return nil, err
		}
		an := analyzer.NewCached[string](analyzer.NewMystem(cfg.Analyzer.MystemBin, cfg.Timeout()))
		return pipeline.NewTagAnnotator[string](an, conv), nil

	case config.AnalyzerPymorphy:
		conv, err := openCorporaConverter(cfg)
		if err != nil {
			return nil, err
		}
		an := analyzer.NewCached[tagconv.OpenCorporaTag](analyzer.NewPymorphy(cfg.Analyzer.PythonBin, cfg.Analyzer.PymorphyScript, cfg.Timeout()))
		return pipeline.NewTagAnnotator[tagconv.OpenCorporaTag](an, conv), nil

	case config.AnalyzerLexicon:
		return newLexiconAnnotator(cfg)
	}

	return nil, fmt.Errorf("unknown analyzer: %s", cfg.Pipeline.Analyzer)
}

func newLexiconAnnotator(cfg *config.Config) (pipeline.Annotator, error) {
	switch tagconv.Vocabulary(cfg.Analyzer.LexiconVocabulary) {
	case tagconv.Mystem:
		conv, err := mystemConverter(cfg)
		if err != nil {
			return nil, err
		}
		lx, err := analyzer.NewMystemLexicon(cfg.Analyzer.Lexicon)
		if err != nil {
			return nil, err
		}
		return pipeline.NewTagAnnotator[string](lx, conv), nil

	case tagconv.OpenCorpora:
		conv, err := openCorporaConverter(cfg)
		if err != nil {
			return nil, err
		}
		lx, err := analyzer.NewOpenCorporaLexicon(cfg.Analyzer.Lexicon)
		if err != nil {
			return nil, err
		}
		return pipeline.NewTagAnnotator[tagconv.OpenCorporaTag](lx, conv), nil
	}

	return nil, fmt.Errorf("unknown lexicon vocabulary: %s", cfg.Analyzer.LexiconVocabulary)
}

func mystemConverter(cfg *config.Config) (*tagconv.MystemConverter, error) {
	if cfg.Tags.MystemTable == "" {
		return tagconv.DefaultMystemConverter()
	}

	t, err := tagconv.LoadTable(cfg.Tags.MystemTable)
	if err != nil {
		return nil, err
	}

	return tagconv.NewMystemConverter(t), nil
}

func openCorporaConverter(cfg *config.Config) (*tagconv.OpenCorporaConverter, error) {
	if cfg.Tags.OpenCorporaTable == "" {
		return tagconv.DefaultOpenCorporaConverter()
	}

	t, err := tagconv.LoadTable(cfg.Tags.OpenCorporaTable)
	if err != nil {
		return nil, err
	}

	return tagconv.NewOpenCorporaConverter(t), nil
}
