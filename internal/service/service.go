// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
// Exported so handlers can shape transport-level failures the same way.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// newInvalidInput is the package-internal shorthand.
func newInvalidInput(fe []FieldError) error { return NewInvalidInputError(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// AuthorService defines author-oriented use cases.
type AuthorService interface {
	CreateAuthor(ctx context.Context, name, email string) (model.Author, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	ListAuthors(ctx context.Context, page repository.Page) (repository.PageResult[model.Author], error)
	GetAuthorAggregatedStats(ctx context.Context, authorID int64) (model.AuthorAggregatedStats, error)
}

// ArticleService defines article-oriented use cases.
type ArticleService interface {
	CreateArticle(ctx context.Context, authorID int64, title, body string, tags []string, publishedAt *time.Time) (model.Article, error)
	GetArticle(ctx context.Context, id int64) (model.Article, error)
	ListArticles(ctx context.Context, page repository.Page) (repository.PageResult[model.Article], error)
	ListArticlesByAuthor(ctx context.Context, authorID int64, page repository.Page) (repository.PageResult[model.Article], error)
}

// CommentService defines reader-comment use cases.
type CommentService interface {
	AddComment(ctx context.Context, articleID int64, authorName, body string) (model.Comment, error)
	ListCommentsByArticle(ctx context.Context, articleID int64, page repository.Page) (repository.PageResult[model.Comment], error)
}
