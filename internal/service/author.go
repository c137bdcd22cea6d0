package service

import (
	"context"
	"strings"
	"time"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/rs/zerolog"
)

// authorService holds author use-case logic: validation + orchestration, no transport / SQL details.
type authorService struct {
	repo repository.AuthorRepository
	log  zerolog.Logger
}

func NewAuthorService(repo repository.AuthorRepository, logger zerolog.Logger) AuthorService {
	l := logger.With().Str("module", "service").Str("component", "author").Logger()
	return &authorService{repo: repo, log: l}
}

func (s *authorService) CreateAuthor(ctx context.Context, name, email string) (model.Author, error) {
	start := time.Now()
	rawName, rawEmail := name, email
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	var ferrs []FieldError
	if name == "" {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not be empty"})
	} else if ln := len([]rune(name)); ln < 2 || ln > 100 {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "length must be between 2 and 100"})
	}
	if !IsValidEmail(email) {
		ferrs = append(ferrs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("name_raw", rawName).Str("email_raw", rawEmail).Interface("field_errors", ferrs).Msg("author validation failed")
		return model.Author{}, err
	}

	out, err := s.repo.Create(ctx, model.Author{Name: name, Email: email})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("email", email).Msg("create author failed")
		return model.Author{}, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("author_id", out.ID).Msg("author created")
	return out, nil
}

func (s *authorService) GetAuthor(ctx context.Context, id int64) (model.Author, error) {
	if id <= 0 {
		return model.Author{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) ListAuthors(ctx context.Context, page repository.Page) (repository.PageResult[model.Author], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list authors failed")
		return repository.PageResult[model.Author]{}, err
	}
	return res, nil
}

// GetAuthorAggregatedStats validates the author and fetches the catalog footprint.
func (s *authorService) GetAuthorAggregatedStats(ctx context.Context, authorID int64) (model.AuthorAggregatedStats, error) {
	if authorID <= 0 {
		return model.AuthorAggregatedStats{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if _, err := s.repo.GetByID(ctx, authorID); err != nil {
		return model.AuthorAggregatedStats{}, err
	}
	stats, err := s.repo.GetAuthorAggregatedStats(ctx, authorID)
	if err != nil {
		s.log.Error().Err(err).Int64("author_id", authorID).Msg("failed to get author aggregated stats")
		return model.AuthorAggregatedStats{}, err
	}
	return stats, nil
}
