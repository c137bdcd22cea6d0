package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
)

type authorRepository struct{ pool *pgxpool.Pool }

func NewAuthorRepository(pool *pgxpool.Pool) repository.AuthorRepository {
	return &authorRepository{pool: pool}
}

func (r *authorRepository) Create(ctx context.Context, a model.Author) (model.Author, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Author{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO authors (name, email) VALUES ($1, $2)
		 RETURNING id, name, email, created_at, updated_at`,
		a.Name, a.Email,
	)
	var out model.Author
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Author{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int64) (model.Author, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Author{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, email, created_at, updated_at FROM authors WHERE id = $1`, id,
	)
	var out model.Author
	if err := row.Scan(&out.ID, &out.Name, &out.Email, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Author{}, repository.ErrNotFound
		}
		return model.Author{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *authorRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Author], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Author]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, email, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM authors
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Author]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Author]{Items: make([]model.Author, 0, limit)}
	for rows.Next() {
		var a model.Author
		var total int
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt, &a.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Author]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, a)
		res.Total = total
	}
	// COUNT(*) OVER() yields no rows when the window is past the end, so
	// fall back to a plain count to keep Content-Range totals accurate.
	if len(res.Items) == 0 {
		if err := exec.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Author]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

// Exists performs a lightweight check to see if an author with the given ID exists.
func (r *authorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

// GetAuthorAggregatedStats calculates an author's catalog footprint.
// The query is layered:
// 1. article_counts tallies total and published articles per author.
// 2. comment_counts tallies reader comments across the author's articles.
// 3. The final SELECT merges both, deriving the average comments per article.
func (r *authorRepository) GetAuthorAggregatedStats(ctx context.Context, authorID int64) (model.AuthorAggregatedStats, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.AuthorAggregatedStats{}, err
	}

	query := `
		WITH article_counts AS (
			SELECT
				COUNT(*) AS articles_total,
				COUNT(published_at) AS articles_published,
				MIN(published_at) AS first_published_at,
				MAX(published_at) AS last_published_at
			FROM articles
			WHERE author_id = $1
		),
		comment_counts AS (
			SELECT COUNT(c.id) AS comments_received
			FROM comments c
			JOIN articles a ON c.article_id = a.id
			WHERE a.author_id = $1
		)
		SELECT
			ac.articles_total,
			ac.articles_published,
			cc.comments_received,
			CASE
				WHEN ac.articles_total > 0
				THEN ROUND(cc.comments_received::NUMERIC / ac.articles_total, 2)
				ELSE 0
			END AS avg_comments_per_article,
			ac.first_published_at,
			ac.last_published_at
		FROM article_counts ac, comment_counts cc
	`

	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx, query, authorID)

	var stats model.AuthorAggregatedStats
	err := row.Scan(
		&stats.ArticlesTotal,
		&stats.ArticlesPublished,
		&stats.CommentsReceived,
		&stats.AvgCommentsPerArticle,
		&stats.FirstPublishedAt,
		&stats.LastPublishedAt,
	)
	if err != nil {
		// Aggregates over empty sets still return a row, but map the error
		// just in case.
		return model.AuthorAggregatedStats{}, repository.MapPgError(err)
	}

	return stats, nil
}

var _ repository.AuthorRepository = (*authorRepository)(nil)
