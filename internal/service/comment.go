package service

import (
	"context"
	"errors"
	"strings"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/rs/zerolog"
)

const maxCommentLen = 2000

type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func NewCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, logger zerolog.Logger) CommentService {
	l := logger.With().Str("module", "service").Str("component", "comment").Logger()
	return &commentService{comments: comments, articles: articles, log: l}
}

func (s *commentService) AddComment(ctx context.Context, articleID int64, authorName, body string) (model.Comment, error) {
	authorName = strings.TrimSpace(authorName)
	body = strings.TrimSpace(body)

	var ferrs []FieldError
	if articleID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "article_id", Message: "must be > 0"})
	}
	if authorName == "" {
		ferrs = append(ferrs, FieldError{Field: "author_name", Message: "must not be empty"})
	} else if ln := len([]rune(authorName)); ln > 100 {
		ferrs = append(ferrs, FieldError{Field: "author_name", Message: "length must be <= 100"})
	}
	if body == "" {
		ferrs = append(ferrs, FieldError{Field: "body", Message: "must not be empty"})
	} else if ln := len([]rune(body)); ln > maxCommentLen {
		ferrs = append(ferrs, FieldError{Field: "body", Message: "length must be <= 2000"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("comment validation failed")
		return model.Comment{}, err
	}

	// Existence check improves client UX vs deferring to FK violation.
	if _, err := s.articles.GetByID(ctx, articleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Comment{}, newInvalidInput([]FieldError{{Field: "article_id", Message: "article does not exist"}})
		}
		return model.Comment{}, err
	}

	out, err := s.comments.Create(ctx, model.Comment{ArticleID: articleID, AuthorName: authorName, Body: body})
	if err != nil {
		s.log.Error().Err(err).Int64("article_id", articleID).Msg("create comment failed")
		return model.Comment{}, err
	}
	return out, nil
}

func (s *commentService) ListCommentsByArticle(ctx context.Context, articleID int64, page repository.Page) (repository.PageResult[model.Comment], error) {
	if articleID <= 0 {
		return repository.PageResult[model.Comment]{}, newInvalidInput([]FieldError{{Field: "article_id", Message: "must be > 0"}})
	}
	p := normalizePage(page)
	res, err := s.comments.ListByArticle(ctx, articleID, p)
	if err != nil {
		s.log.Error().Err(err).Int64("article_id", articleID).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list comments failed")
		return repository.PageResult[model.Comment]{}, err
	}
	return res, nil
}
