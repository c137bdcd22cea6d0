package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
)

type articleRepository struct{ pool *pgxpool.Pool }

func NewArticleRepository(pool *pgxpool.Pool) repository.ArticleRepository {
	return &articleRepository{pool: pool}
}

const articleColumns = `id, author_id, title, body, tags, published_at, created_at, updated_at`

func scanArticle(row pgx.Row) (model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Body, &a.Tags, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *articleRepository) Create(ctx context.Context, a model.Article) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO articles (author_id, title, body, tags, published_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+articleColumns,
		a.AuthorID, a.Title, a.Body, a.Tags, a.PublishedAt,
	)
	out, err := scanArticle(row)
	if err != nil {
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) GetByID(ctx context.Context, id int64) (model.Article, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Article{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id,
	)
	out, err := scanArticle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Article{}, repository.ErrNotFound
		}
		return model.Article{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *articleRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Article], error) {
	return r.list(ctx, p, 0)
}

func (r *articleRepository) ListByAuthor(ctx context.Context, authorID int64, p repository.Page) (repository.PageResult[model.Article], error) {
	return r.list(ctx, p, authorID)
}

// list serves both the flat and the per-author listing; authorID 0 means no filter.
func (r *articleRepository) list(ctx context.Context, p repository.Page, authorID int64) (repository.PageResult[model.Article], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Article]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+articleColumns+`, COUNT(*) OVER() AS total
		 FROM articles
		 WHERE ($3 = 0 OR author_id = $3)
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset, authorID,
	)
	if err != nil {
		return repository.PageResult[model.Article]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Article]{Items: make([]model.Article, 0, limit)}
	for rows.Next() {
		var a model.Article
		var total int
		if err := rows.Scan(&a.ID, &a.AuthorID, &a.Title, &a.Body, &a.Tags, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, a)
		res.Total = total
	}
	// Windows past the end return no rows; recount so Content-Range totals stay accurate.
	if len(res.Items) == 0 {
		if err := exec.QueryRow(ctx,
			`SELECT COUNT(*) FROM articles WHERE ($1 = 0 OR author_id = $1)`, authorID,
		).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Article]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

// Exists performs a lightweight check to see if an article with the given ID exists.
func (r *articleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ensurePool(r.pool); err != nil {
		return false, err
	}
	var exists bool
	exec := getQ(ctx, r.pool)
	err := exec.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, repository.MapPgError(err)
	}
	return exists, nil
}

var _ repository.ArticleRepository = (*articleRepository)(nil)
