// Package corpus validates a directory of raw articles and keeps them in
// memory, keyed by article id.
package corpus

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/revelaction/conllpipe/article"
	"github.com/revelaction/conllpipe/storage"
)

// Manager holds the articles of a validated corpus directory.
type Manager struct {
	path string

	// built once in New
	storage map[int]*article.Article
}

// New validates the corpus directory and loads every raw article through
// reader. Validation errors are returned before any article is read.
func New(path string, reader storage.ArticleReader) (*Manager, error) {
	m := &Manager{
		path:    path,
		storage: map[int]*article.Article{},
	}

	rawFiles, err := m.validate()
	if err != nil {
		return nil, err
	}

	if err := m.scan(rawFiles, reader); err != nil {
		return nil, err
	}

	return m, nil
}

// validate checks the corpus invariants and returns the raw files.
func (m *Manager) validate() ([]string, error) {
	info, err := os.Stat(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &NotFoundError{Path: m.path}
	}
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: m.path}
	}

	entries, err := os.ReadDir(m.path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	if len(entries) == 0 {
		return nil, &EmptyDirectoryError{Path: m.path}
	}

	var rawFiles, metaFiles []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch {
		case article.IsRaw(e.Name()):
			rawFiles = append(rawFiles, filepath.Join(m.path, e.Name()))
		case article.IsMeta(e.Name()):
			metaFiles = append(metaFiles, filepath.Join(m.path, e.Name()))
		}
	}

	if len(rawFiles) == 0 {
		return nil, &InconsistentDatasetError{Path: m.path, Reason: "no raw files"}
	}

	if len(metaFiles) != len(rawFiles) {
		return nil, &InconsistentDatasetError{
			Path:   m.path,
			Reason: fmt.Sprintf("%d meta files for %d raw files", len(metaFiles), len(rawFiles)),
		}
	}

	if err := m.validateIds(rawFiles); err != nil {
		return nil, err
	}

	for _, files := range [][]string{metaFiles, rawFiles} {
		for _, f := range files {
			info, err := os.Stat(f)
			if err != nil {
				return nil, fmt.Errorf("IO error: %w", err)
			}
			if info.Size() == 0 {
				id, _ := article.IDFromPath(f)
				return nil, &InconsistentDatasetError{Path: f, Id: id, Reason: "empty file"}
			}
		}
	}

	return rawFiles, nil
}

// validateIds checks that the sorted raw ids are exactly 1..max.
func (m *Manager) validateIds(rawFiles []string) error {
	ids := make([]int, 0, len(rawFiles))
	for _, f := range rawFiles {
		id, err := article.IDFromPath(f)
		if err != nil {
			return &InconsistentDatasetError{Path: f, Reason: err.Error()}
		}
		ids = append(ids, id)
	}

	sort.Ints(ids)

	for i, id := range ids {
		if i > 0 && id == ids[i-1] {
			return &InconsistentDatasetError{Path: m.path, Id: id, Reason: "duplicated id"}
		}
		if id != i+1 {
			return &InconsistentDatasetError{Path: m.path, Id: i + 1, Reason: "missing id"}
		}
	}

	return nil
}

func (m *Manager) scan(rawFiles []string, reader storage.ArticleReader) error {
	for _, f := range rawFiles {
		a, err := reader.FromRaw(f)
		if err != nil {
			return fmt.Errorf("failed to read article %s: %w", f, err)
		}

		m.storage[a.Id] = a
	}

	return nil
}

// Articles returns the articles keyed by id. Callers may annotate the
// articles but must not add or remove entries.
func (m *Manager) Articles() map[int]*article.Article {
	return m.storage
}

// Ids returns the article ids in ascending order.
func (m *Manager) Ids() []int {
	ids := make([]int, 0, len(m.storage))
	for id := range m.storage {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (m *Manager) Len() int {
	return len(m.storage)
}

func (m *Manager) Path() string {
	return m.path
}
