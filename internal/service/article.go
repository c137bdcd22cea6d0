package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/rs/zerolog"
)

const (
	maxTitleLen = 200
	maxTags     = 10
)

type articleService struct {
	articles repository.ArticleRepository
	authors  repository.AuthorRepository
	tx       repository.TxManager
	log      zerolog.Logger
}

func NewArticleService(articles repository.ArticleRepository, authors repository.AuthorRepository, tx repository.TxManager, logger zerolog.Logger) ArticleService {
	l := logger.With().Str("module", "service").Str("component", "article").Logger()
	return &articleService{articles: articles, authors: authors, tx: tx, log: l}
}

func (s *articleService) CreateArticle(ctx context.Context, authorID int64, title, body string, tags []string, publishedAt *time.Time) (model.Article, error) {
	start := time.Now()
	rawTitle := title

	// Normalize early so validation and persistence see canonical values.
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	tags = normalizeTags(tags)

	var ferrs []FieldError
	if authorID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "author_id", Message: "must be > 0"})
	}
	if title == "" {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "must not be empty"})
	} else if ln := len([]rune(title)); ln > maxTitleLen {
		ferrs = append(ferrs, FieldError{Field: "title", Message: "length must be <= 200"})
	}
	if body == "" {
		ferrs = append(ferrs, FieldError{Field: "body", Message: "must not be empty"})
	}
	if len(tags) > maxTags {
		ferrs = append(ferrs, FieldError{Field: "tags", Message: "at most 10 tags"})
	}
	if publishedAt != nil && publishedAt.After(time.Now().Add(time.Minute)) {
		ferrs = append(ferrs, FieldError{Field: "published_at", Message: "must not be in the future"})
	}

	// Early exit if basic structure is invalid – do not touch the database.
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Str("title_raw", rawTitle).Msg("article validation failed (structure)")
		return model.Article{}, err
	}

	// The author check and the insert run in one transaction so the author
	// cannot vanish between them.
	var out model.Article
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.authors.GetByID(ctx, authorID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return newInvalidInput([]FieldError{{Field: "author_id", Message: "author does not exist"}})
			}
			return err
		}
		created, err := s.articles.Create(ctx, model.Article{
			AuthorID:    authorID,
			Title:       title,
			Body:        body,
			Tags:        tags,
			PublishedAt: publishedAt,
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidInput) {
			s.log.Error().Err(err).Int64("author_id", authorID).Str("title", title).Msg("create article failed")
		}
		return model.Article{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("article_id", out.ID).Msg("article created")
	return out, nil
}

func (s *articleService) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	if id <= 0 {
		return model.Article{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.articles.GetByID(ctx, id)
}

func (s *articleService) ListArticles(ctx context.Context, page repository.Page) (repository.PageResult[model.Article], error) {
	p := normalizePage(page)
	res, err := s.articles.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list articles failed")
		return repository.PageResult[model.Article]{}, err
	}
	return res, nil
}

func (s *articleService) ListArticlesByAuthor(ctx context.Context, authorID int64, page repository.Page) (repository.PageResult[model.Article], error) {
	if authorID <= 0 {
		return repository.PageResult[model.Article]{}, newInvalidInput([]FieldError{{Field: "author_id", Message: "must be > 0"}})
	}
	p := normalizePage(page)
	res, err := s.articles.ListByAuthor(ctx, authorID, p)
	if err != nil {
		s.log.Error().Err(err).Int64("author_id", authorID).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list articles by author failed")
		return repository.PageResult[model.Article]{}, err
	}
	return res, nil
}
