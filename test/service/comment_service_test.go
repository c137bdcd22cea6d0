package service_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/maxviazov/article-catalog-service/internal/service"
)

type fakeCommentRepo struct {
	nextID    int64
	items     []model.Comment
	createErr error
	lastPage  repository.Page
}

func newFakeCommentRepo() *fakeCommentRepo { return &fakeCommentRepo{nextID: 1} }

func (f *fakeCommentRepo) Create(_ context.Context, c model.Comment) (model.Comment, error) {
	if f.createErr != nil {
		return model.Comment{}, f.createErr
	}
	c.ID = f.nextID
	f.nextID++
	f.items = append(f.items, c)
	return c, nil
}
func (f *fakeCommentRepo) ListByArticle(_ context.Context, articleID int64, p repository.Page) (repository.PageResult[model.Comment], error) {
	f.lastPage = p
	res := repository.PageResult[model.Comment]{}
	for _, c := range f.items {
		if c.ArticleID == articleID {
			res.Items = append(res.Items, c)
		}
	}
	res.Total = len(res.Items)
	return res, nil
}

var _ repository.CommentRepository = (*fakeCommentRepo)(nil)

func newCommentSvc(comments *fakeCommentRepo, articles *fakeArticleRepo) service.CommentService {
	logger := zerolog.New(io.Discard)
	return service.NewCommentService(comments, articles, logger)
}

func seedArticle(t *testing.T, articles *fakeArticleRepo) model.Article {
	t.Helper()
	a, err := articles.Create(context.Background(), model.Article{AuthorID: 1, Title: "T", Body: "B"})
	if err != nil {
		t.Fatalf("seed article: %v", err)
	}
	return a
}

func TestCommentService_AddComment_Validation(t *testing.T) {
	articles := newFakeArticleRepo()
	article := seedArticle(t, articles)
	svc := newCommentSvc(newFakeCommentRepo(), articles)

	cases := []struct {
		name       string
		articleID  int64
		authorName string
		body       string
		wantField  string
	}{
		{"zero article", 0, "reader", "hello", "article_id"},
		{"empty author name", article.ID, "   ", "hello", "author_name"},
		{"author name too long", article.ID, strings.Repeat("x", 101), "hello", "author_name"},
		{"empty body", article.ID, "reader", "", "body"},
		{"body too long", article.ID, "reader", strings.Repeat("x", 2001), "body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddComment(context.Background(), tc.articleID, tc.authorName, tc.body)
			if !serviceErrIsInvalid(err) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			fields := service.FieldErrors(err)
			found := false
			for _, f := range fields {
				if f.Field == tc.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected field error for %s, got %+v", tc.wantField, fields)
			}
		})
	}
}

func TestCommentService_AddComment_UnknownArticle(t *testing.T) {
	svc := newCommentSvc(newFakeCommentRepo(), newFakeArticleRepo())
	_, err := svc.AddComment(context.Background(), 77, "reader", "hello")
	if !serviceErrIsInvalid(err) {
		t.Fatalf("expected invalid input for unknown article, got %v", err)
	}
	fields := service.FieldErrors(err)
	if len(fields) != 1 || fields[0].Field != "article_id" {
		t.Fatalf("expected article_id field error, got %+v", fields)
	}
}

func TestCommentService_AddComment_OK(t *testing.T) {
	articles := newFakeArticleRepo()
	article := seedArticle(t, articles)
	comments := newFakeCommentRepo()
	svc := newCommentSvc(comments, articles)
	out, err := svc.AddComment(context.Background(), article.ID, "  reader  ", "  well said  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AuthorName != "reader" || out.Body != "well said" {
		t.Fatalf("expected trimmed fields, got %+v", out)
	}
}

func TestCommentService_ListByArticle_PaginationNormalization(t *testing.T) {
	articles := newFakeArticleRepo()
	article := seedArticle(t, articles)
	comments := newFakeCommentRepo()
	svc := newCommentSvc(comments, articles)
	if _, err := svc.ListCommentsByArticle(context.Background(), article.ID, repository.Page{Limit: -3, Offset: -7}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comments.lastPage.Limit != 25 || comments.lastPage.Offset != 0 {
		t.Fatalf("expected normalized page 25/0, got %+v", comments.lastPage)
	}
}
