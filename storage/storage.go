package storage

import (
	"github.com/revelaction/conllpipe/article"
	"github.com/revelaction/conllpipe/conllu"
)

// ArticleReader defines read operations for raw corpus files
type ArticleReader interface {
	// FromRaw builds an Article from a <id>_raw.txt file and its metadata
	FromRaw(path string) (*article.Article, error)
}

// ArticleWriter defines write operations for processed articles
type ArticleWriter interface {
	// ToCleaned persists the cleaned text of the article
	ToCleaned(a *article.Article) error

	// ToConllu persists the CONLL-U rendering of the article
	ToConllu(a *article.Article, includeTags bool) error
}

// ConlluReader reads back processed articles
type ConlluReader interface {
	// ReadConllu returns the sentences of a written CONLL-U file
	ReadConllu(id int, includeTags bool) ([]*conllu.Sentence, error)

	// ConlluIds returns the ids of the articles with a CONLL-U file, sorted
	ConlluIds(includeTags bool) ([]int, error)
}

// ArticleRepository combines read and write operations
type ArticleRepository interface {
	ArticleReader
	ArticleWriter
	ConlluReader
}
