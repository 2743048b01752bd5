package article

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const (
	RawSuffix     = "_raw.txt"
	MetaSuffix    = "_meta.json"
	CleanedSuffix = "_cleaned.txt"

	// CONLL-U without and with morphological tags
	PosConlluSuffix   = "_pos_conllu.conllu"
	MorphConlluSuffix = "_morphological_conllu.conllu"
)

// ErrFileName is returned for files that do not follow <id>_<suffix>.
var ErrFileName = errors.New("file name does not start with an article id")

var idPrefix = regexp.MustCompile(`^(\d+)_`)

func RawFileName(id int) string {
	return strconv.Itoa(id) + RawSuffix
}

func MetaFileName(id int) string {
	return strconv.Itoa(id) + MetaSuffix
}

func CleanedFileName(id int) string {
	return strconv.Itoa(id) + CleanedSuffix
}

// ConlluFileName returns the name of the CONLL-U file of the article.
func ConlluFileName(id int, includeTags bool) string {
	if includeTags {
		return strconv.Itoa(id) + MorphConlluSuffix
	}
	return strconv.Itoa(id) + PosConlluSuffix
}

func IsRaw(path string) bool {
	return strings.HasSuffix(filepath.Base(path), RawSuffix)
}

func IsMeta(path string) bool {
	return strings.HasSuffix(filepath.Base(path), MetaSuffix)
}

// IDFromPath extracts the article id from the numeric prefix of the file
// name: "corpus/12_raw.txt" → 12. The whole prefix is parsed, so ids of
// any length are supported.
func IDFromPath(path string) (int, error) {
	name := filepath.Base(path)

	m := idPrefix.FindStringSubmatch(name)
	if m == nil {
		return 0, fmt.Errorf("%w: %s", ErrFileName, name)
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrFileName, name, err)
	}

	if id < 1 {
		return 0, fmt.Errorf("%w: %s: id must be positive", ErrFileName, name)
	}

	return id, nil
}
