package contract

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
)

// Author contracts

type AuthorFactory func(t *testing.T) (repository.AuthorRepository, func())

type ArticleFactory func(t *testing.T) (repo repository.ArticleRepository, createAuthor func(ctx context.Context, name string) (int64, error), cleanup func())

type CommentFactory func(t *testing.T) (repo repository.CommentRepository, mkArticle func(ctx context.Context) (int64, error), cleanup func())

type TxFactory func(t *testing.T) (tx repository.TxManager, authors repository.AuthorRepository, cleanup func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

func RunAuthorRepositoryContract(t *testing.T, makeRepo AuthorFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, model.Author{Name: "Ursula Vernon", Email: "ursula@example.com"})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.ID != created.ID || got.Name != created.Name || got.Email != created.Email {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			a := model.Author{
				Name:  "A-" + string(rune('A'+i)),
				Email: fmt.Sprintf("a%d@example.com", i),
			}
			if _, err := repo.Create(ctx, a); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 7 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 6})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 7 {
			t.Fatalf("unexpected page2: len=%d total=%d", len(res2.Items), res2.Total)
		}
		// Windows past the end must still report the real total so the
		// Content-Range header can clamp against it.
		res3, err := repo.List(ctx, repository.Page{Limit: 3, Offset: 100})
		if err != nil {
			t.Fatalf("list3: %v", err)
		}
		if len(res3.Items) != 0 || res3.Total != 7 {
			t.Fatalf("unexpected page3: len=%d total=%d", len(res3.Items), res3.Total)
		}
	})

	t.Run("create_duplicate_email_conflict", func(t *testing.T) {
		repo, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		_, err := repo.Create(ctx, model.Author{Name: "Dup", Email: "dup@example.com"})
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err = repo.Create(ctx, model.Author{Name: "Other", Email: "dup@example.com"})
		if err == nil || err != repository.ErrAlreadyExists {
			t.Fatalf("expected ErrAlreadyExists, got %v", err)
		}
	})
}

func RunArticleRepositoryContract(t *testing.T, makeRepo ArticleFactory) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, mkAuthor, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		authorID, err := mkAuthor(ctx, "Naomi Mitchison")
		if err != nil {
			t.Fatalf("seed author: %v", err)
		}
		published := time.Now().UTC().Truncate(time.Second)
		created, err := repo.Create(ctx, model.Article{
			AuthorID:    authorID,
			Title:       "Travel Light",
			Body:        "A dragon-reared heroine...",
			Tags:        []string{"fantasy", "classic"},
			PublishedAt: &published,
		})
		if err != nil {
			t.Fatalf("create article: %v", err)
		}
		got, err := repo.GetByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != created.ID || got.AuthorID != authorID || len(got.Tags) != 2 {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 42424242)
		if err == nil || err != repository.ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_by_author_pagination", func(t *testing.T) {
		repo, mkAuthor, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		authorID, err := mkAuthor(ctx, "Prolific Author")
		if err != nil {
			t.Fatalf("seed author: %v", err)
		}
		for i := 0; i < 5; i++ {
			a := model.Article{AuthorID: authorID, Title: "Part " + string(rune('A'+i)), Body: "..."}
			if _, err := repo.Create(ctx, a); err != nil {
				t.Fatalf("seed article %d: %v", i, err)
			}
		}
		res, err := repo.ListByAuthor(ctx, authorID, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 5 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Article{AuthorID: 9999999, Title: "X", Body: "Y"})
		if err == nil || err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})
}

func RunCommentRepositoryContract(t *testing.T, makeRepo CommentFactory) {
	t.Helper()

	t.Run("create_and_list", func(t *testing.T) {
		repo, mkArticle, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		articleID, err := mkArticle(ctx)
		if err != nil {
			t.Fatalf("seed article: %v", err)
		}
		for i := 0; i < 4; i++ {
			c := model.Comment{ArticleID: articleID, AuthorName: "reader", Body: "nice"}
			if _, err := repo.Create(ctx, c); err != nil {
				t.Fatalf("seed comment %d: %v", i, err)
			}
		}
		res, err := repo.ListByArticle(ctx, articleID, repository.Page{Limit: 3, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 3 || res.Total != 4 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Comment{ArticleID: 8888888, AuthorName: "x", Body: "y"})
		if err == nil || err != repository.ErrConflict {
			t.Fatalf("expected ErrConflict on FK violation, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, authors, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		sentinel := fmt.Errorf("boom")
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := authors.Create(ctx, model.Author{Name: "Ghost", Email: "ghost@example.com"}); err != nil {
				return err
			}
			return sentinel
		})
		if err == nil {
			t.Fatalf("expected error from tx body")
		}
		res, err := authors.List(ctx, repository.Page{Limit: 10, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, a := range res.Items {
			if a.Email == "ghost@example.com" {
				t.Fatalf("rolled-back author leaked: %+v", a)
			}
		}
	})

	t.Run("commit_on_success", func(t *testing.T) {
		tx, authors, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		var id int64
		err := tx.WithinTx(ctx, func(ctx context.Context) error {
			a, err := authors.Create(ctx, model.Author{Name: "Kept", Email: "kept@example.com"})
			if err != nil {
				return err
			}
			id = a.ID
			return nil
		})
		if err != nil {
			t.Fatalf("tx: %v", err)
		}
		if _, err := authors.GetByID(ctx, id); err != nil {
			t.Fatalf("committed author missing: %v", err)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	p, cleanup := makePinger(t)
	t.Cleanup(cleanup)
	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
