package repository

import (
	"context"

	"github.com/maxviazov/article-catalog-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// AuthorRepository declares persistence operations for authors.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type AuthorRepository interface {
	Create(ctx context.Context, a model.Author) (model.Author, error)
	GetByID(ctx context.Context, id int64) (model.Author, error)
	List(ctx context.Context, p Page) (PageResult[model.Author], error)
	Exists(ctx context.Context, id int64) (bool, error)
	// GetAuthorAggregatedStats calculates an author's catalog footprint:
	// article counts, comment counts, first/last publication timestamps.
	GetAuthorAggregatedStats(ctx context.Context, authorID int64) (model.AuthorAggregatedStats, error)
}

// ArticleRepository declares persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, a model.Article) (model.Article, error)
	GetByID(ctx context.Context, id int64) (model.Article, error)
	List(ctx context.Context, p Page) (PageResult[model.Article], error)
	ListByAuthor(ctx context.Context, authorID int64, p Page) (PageResult[model.Article], error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// CommentRepository declares operations for reader comments per article.
type CommentRepository interface {
	Create(ctx context.Context, c model.Comment) (model.Comment, error)
	ListByArticle(ctx context.Context, articleID int64, p Page) (PageResult[model.Comment], error)
}
