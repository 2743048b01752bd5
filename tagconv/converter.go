// Package tagconv converts the tags of external morphological analyzers to
// Universal Dependencies part of speech and features.
//
// Each analyzer has its own tag shape: Mystem produces flat strings,
// pymorphy produces structured OpenCorpora tags. A Converter is
// parameterized by that shape.
package tagconv

import "fmt"

// Vocabulary names an analyzer tag set.
type Vocabulary string

const (
	Mystem      Vocabulary = "mystem"
	OpenCorpora Vocabulary = "opencorpora"
)

// Converter converts a raw tag of type T to UD.
type Converter[T any] interface {
	// ConvertPOS returns the UD part of speech, or an *UnknownTagError.
	ConvertPOS(tag T) (string, error)

	// ConvertFeatures returns the UD features joined with '|', keys sorted.
	ConvertFeatures(tag T) string
}

// Convert returns both the part of speech and the features of tag.
func Convert[T any](c Converter[T], tag T) (string, string, error) {
	pos, err := c.ConvertPOS(tag)
	if err != nil {
		return "", "", err
	}

	return pos, c.ConvertFeatures(tag), nil
}

// UnknownTagError is returned when the POS grammeme of a tag is not in the
// conversion table.
type UnknownTagError struct {
	Vocabulary Vocabulary

	// Tag is the raw tag as produced by the analyzer
	Tag string

	// Atom is the POS grammeme that could not be converted
	Atom string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %s part of speech %q in tag %q", e.Vocabulary, e.Atom, e.Tag)
}
