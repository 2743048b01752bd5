package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/conllpipe/article"
	"github.com/revelaction/conllpipe/conllu"
	"github.com/revelaction/conllpipe/storage"
)

// ArticleStore reads raw articles from a corpus directory and writes the
// processed files to an output directory.
type ArticleStore struct {
	outDir string
}

var _ storage.ArticleRepository = (*ArticleStore)(nil)

// NewArticleStore creates a filesystem article store. The output directory
// is created on first write.
func NewArticleStore(outDir string) *ArticleStore {
	return &ArticleStore{outDir: outDir}
}

func (h *ArticleStore) OutDir() string {
	return h.outDir
}

// FromRaw reads a raw text file. The metadata file next to it is loaded
// if present.
func (h *ArticleStore) FromRaw(path string) (*article.Article, error) {
	id, err := article.IDFromPath(path)
	if err != nil {
		return nil, err
	}

	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	a := article.New(id, string(text))

	metaPath := filepath.Join(filepath.Dir(path), article.MetaFileName(id))
	if err := readMeta(metaPath, a); err != nil {
		return nil, err
	}

	return a, nil
}

func readMeta(path string, a *article.Article) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	id := a.Id
	if err := json.Unmarshal(data, a); err != nil {
		return fmt.Errorf("JSON decoding error in %s: %w", path, err)
	}
	// the file name is authoritative
	a.Id = id

	return nil
}

// ToCleaned writes <id>_cleaned.txt.
func (h *ArticleStore) ToCleaned(a *article.Article) error {
	return h.write(article.CleanedFileName(a.Id), a.CleanedText())
}

// ToConllu writes <id>_morphological_conllu.conllu when includeTags is
// set, <id>_pos_conllu.conllu otherwise.
func (h *ArticleStore) ToConllu(a *article.Article, includeTags bool) error {
	return h.write(article.ConlluFileName(a.Id, includeTags), a.ConlluText(includeTags))
}

func (h *ArticleStore) write(name, content string) error {
	if err := os.MkdirAll(h.outDir, 0755); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	if err := os.WriteFile(filepath.Join(h.outDir, name), []byte(content), 0644); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return nil
}

// ReadConllu parses a CONLL-U file written by ToConllu.
func (h *ArticleStore) ReadConllu(id int, includeTags bool) ([]*conllu.Sentence, error) {
	path := filepath.Join(h.outDir, article.ConlluFileName(id, includeTags))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	sentences, err := conllu.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sentences, nil
}

// ConlluIds lists the ids of the articles with a CONLL-U file in the
// output directory.
func (h *ArticleStore) ConlluIds(includeTags bool) ([]int, error) {
	files, err := os.ReadDir(h.outDir)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	suffix := article.PosConlluSuffix
	if includeTags {
		suffix = article.MorphConlluSuffix
	}

	var ids []int
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), suffix) {
			continue
		}

		id, err := article.IDFromPath(file.Name())
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	sort.Ints(ids)
	return ids, nil
}
