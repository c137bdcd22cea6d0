package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
)

type commentRepository struct{ pool *pgxpool.Pool }

func NewCommentRepository(pool *pgxpool.Pool) repository.CommentRepository {
	return &commentRepository{pool: pool}
}

func (r *commentRepository) Create(ctx context.Context, c model.Comment) (model.Comment, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Comment{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO comments (article_id, author_name, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, article_id, author_name, body, created_at`,
		c.ArticleID, c.AuthorName, c.Body,
	)
	var out model.Comment
	if err := row.Scan(&out.ID, &out.ArticleID, &out.AuthorName, &out.Body, &out.CreatedAt); err != nil {
		return model.Comment{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *commentRepository) ListByArticle(ctx context.Context, articleID int64, p repository.Page) (repository.PageResult[model.Comment], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Comment]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, article_id, author_name, body, created_at, COUNT(*) OVER() AS total
		 FROM comments
		 WHERE article_id = $3
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset, articleID,
	)
	if err != nil {
		return repository.PageResult[model.Comment]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Comment]{Items: make([]model.Comment, 0, limit)}
	for rows.Next() {
		var c model.Comment
		var total int
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.Body, &c.CreatedAt, &total); err != nil {
			return repository.PageResult[model.Comment]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, c)
		res.Total = total
	}
	// Windows past the end return no rows; recount so Content-Range totals stay accurate.
	if len(res.Items) == 0 {
		if err := exec.QueryRow(ctx,
			`SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID,
		).Scan(&res.Total); err != nil {
			return repository.PageResult[model.Comment]{}, repository.MapPgError(err)
		}
	}
	return res, nil
}

var _ repository.CommentRepository = (*commentRepository)(nil)
