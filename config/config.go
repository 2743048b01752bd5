// Package config loads the YAML configuration of a pipeline run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingCorpusPath     = errors.New("corpus.path is required")
	ErrMissingOutputPath     = errors.New("corpus.output is required")
	ErrInvalidMode           = errors.New("pipeline.mode must be 'basic' or 'advanced'")
	ErrInvalidAnalyzer       = errors.New("pipeline.analyzer must be one of: mystem, pymorphy, lexicon")
	ErrInvalidSegmenter      = errors.New("segmenter.kind must be 'rule' or 'punkt'")
	ErrMissingPunktModel     = errors.New("segmenter.punkt_model is required for the punkt segmenter")
	ErrMissingMystemBin      = errors.New("analyzer.mystem_bin is required")
	ErrMissingPymorphyScript = errors.New("analyzer.python_bin and analyzer.pymorphy_script are required")
	ErrMissingLexicon        = errors.New("analyzer.lexicon is required")
	ErrInvalidVocabulary     = errors.New("analyzer.lexicon_vocabulary must be 'mystem' or 'opencorpora'")
	ErrInvalidTimeout        = errors.New("analyzer.timeout_sec must be non-negative")
	ErrInvalidLogLevel       = errors.New("logging.level must be one of: debug, info, warn, error")
)

const (
	ModeBasic    = "basic"
	ModeAdvanced = "advanced"

	AnalyzerMystem   = "mystem"
	AnalyzerPymorphy = "pymorphy"
	AnalyzerLexicon  = "lexicon"

	SegmenterRule  = "rule"
	SegmenterPunkt = "punkt"
)

// Config is the root configuration.
type Config struct {
	Corpus    CorpusConfig    `yaml:"corpus"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	Segmenter SegmenterConfig `yaml:"segmenter"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Tags      TagsConfig      `yaml:"tags"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CorpusConfig locates the input corpus and the output directory.
type CorpusConfig struct {
	Path   string `yaml:"path"`
	Output string `yaml:"output"`
}

type PipelineConfig struct {
	Mode     string `yaml:"mode"`
	Analyzer string `yaml:"analyzer"`
}

type SegmenterConfig struct {
	Kind       string `yaml:"kind"`
	PunktModel string `yaml:"punkt_model"`
}

// AnalyzerConfig configures the external morphological analyzers.
type AnalyzerConfig struct {
	MystemBin      string `yaml:"mystem_bin"`
	PythonBin      string `yaml:"python_bin"`
	PymorphyScript string `yaml:"pymorphy_script"`
	TimeoutSec     int    `yaml:"timeout_sec"`

	// Lexicon is a tab-separated form, lemma, tag file
	Lexicon           string `yaml:"lexicon"`
	LexiconVocabulary string `yaml:"lexicon_vocabulary"`
}

// TagsConfig overrides the built-in tag conversion tables.
type TagsConfig struct {
	MystemTable      string `yaml:"mystem_table"`
	OpenCorporaTable string `yaml:"opencorpora_table"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Output: "output",
		},
		Pipeline: PipelineConfig{
			Mode:     ModeBasic,
			Analyzer: AnalyzerMystem,
		},
		Segmenter: SegmenterConfig{
			Kind: SegmenterRule,
		},
		Analyzer: AnalyzerConfig{
			MystemBin:         "mystem",
			PythonBin:         "python3",
			TimeoutSec:        10,
			LexiconVocabulary: "mystem",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig reads the YAML file at filepath over the defaults. The result
// is not validated: flags may still complete it.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	if c.Corpus.Path == "" {
		return ErrMissingCorpusPath
	}
	if c.Corpus.Output == "" {
		return ErrMissingOutputPath
	}

	switch c.Segmenter.Kind {
	case SegmenterRule:
	case SegmenterPunkt:
		if c.Segmenter.PunktModel == "" {
			return ErrMissingPunktModel
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSegmenter, c.Segmenter.Kind)
	}

	switch c.Pipeline.Mode {
	case ModeBasic:
	case ModeAdvanced:
		if err := c.validateAnalyzer(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Pipeline.Mode)
	}

	if c.Analyzer.TimeoutSec < 0 {
		return ErrInvalidTimeout
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	return nil
}

// validateAnalyzer is only relevant for the advanced pipeline.
func (c *Config) validateAnalyzer() error {
	switch c.Pipeline.Analyzer {
	case AnalyzerMystem:
		if c.Analyzer.MystemBin == "" {
			return ErrMissingMystemBin
		}
	case AnalyzerPymorphy:
		if c.Analyzer.PythonBin == "" || c.Analyzer.PymorphyScript == "" {
			return ErrMissingPymorphyScript
		}
	case AnalyzerLexicon:
		if c.Analyzer.Lexicon == "" {
			return ErrMissingLexicon
		}
		switch c.Analyzer.LexiconVocabulary {
		case "mystem", "opencorpora":
		default:
			return fmt.Errorf("%w: %q", ErrInvalidVocabulary, c.Analyzer.LexiconVocabulary)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAnalyzer, c.Pipeline.Analyzer)
	}

	return nil
}

// Timeout returns the per-call timeout of the external analyzers.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Analyzer.TimeoutSec) * time.Second
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Corpus: %s, Output: %s, Mode: %s, Analyzer: %s, Segmenter: %s}",
		c.Corpus.Path, c.Corpus.Output, c.Pipeline.Mode, c.Pipeline.Analyzer, c.Segmenter.Kind,
	)
}
