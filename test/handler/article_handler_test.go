package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/handler"
	"github.com/maxviazov/article-catalog-service/internal/model"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/maxviazov/article-catalog-service/internal/service"
)

type stubArticleService struct {
	create struct {
		article model.Article
		err     error
	}
	get struct {
		article model.Article
		err     error
	}
	list struct {
		res  repository.PageResult[model.Article]
		err  error
		page repository.Page
	}
	byAuthor struct {
		res      repository.PageResult[model.Article]
		err      error
		authorID int64
	}
}

func (s *stubArticleService) CreateArticle(ctx context.Context, authorID int64, title, body string, tags []string, publishedAt *time.Time) (model.Article, error) {
	return s.create.article, s.create.err
}
func (s *stubArticleService) GetArticle(ctx context.Context, id int64) (model.Article, error) {
	return s.get.article, s.get.err
}
func (s *stubArticleService) ListArticles(ctx context.Context, p repository.Page) (repository.PageResult[model.Article], error) {
	s.list.page = p
	return s.list.res, s.list.err
}
func (s *stubArticleService) ListArticlesByAuthor(ctx context.Context, authorID int64, p repository.Page) (repository.PageResult[model.Article], error) {
	s.byAuthor.authorID = authorID
	return s.byAuthor.res, s.byAuthor.err
}

func newArticleRouter(as service.ArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, stubPingerNoop{}, nil, as, nil, 25)
	return r
}

func TestArticleHandler_Create_OK(t *testing.T) {
	stub := &stubArticleService{}
	stub.create.article = model.Article{ID: 1, AuthorID: 2, Title: "Go Generics in Practice"}
	r := newArticleRouter(stub)
	body, _ := json.Marshal(map[string]any{"author_id": 2, "title": "Go Generics in Practice", "body": "..."})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(body)))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestArticleHandler_Create_BadPublishedAt(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleRouter(stub)
	body, _ := json.Marshal(map[string]any{"author_id": 2, "title": "T", "body": "B", "published_at": "yesterday"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(body)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("published_at")) {
		t.Fatalf("expected published_at field error, body=%s", w.Body.String())
	}
}

func TestArticleHandler_Create_AuthorMissing(t *testing.T) {
	stub := &stubArticleService{}
	stub.create.err = repository.ErrNotFound
	r := newArticleRouter(stub)
	body, _ := json.Marshal(map[string]any{"author_id": 99, "title": "T", "body": "B"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/articles", bytes.NewReader(body)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestArticleHandler_List_RangeHeader(t *testing.T) {
	stub := &stubArticleService{}
	stub.list.res = repository.PageResult[model.Article]{Total: 42}
	r := newArticleRouter(stub)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil)
	req.Header.Set("Range", "items=20-29")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Content-Range"); got != "items 20-29/42" {
		t.Fatalf("unexpected Content-Range: %q", got)
	}
	if stub.list.page.Limit != 10 || stub.list.page.Offset != 20 {
		t.Fatalf("expected page 10/20, got %+v", stub.list.page)
	}
}

func TestArticleHandler_List_OffsetAloneKeepsDefaultLimit(t *testing.T) {
	stub := &stubArticleService{}
	stub.list.res = repository.PageResult[model.Article]{Total: 100}
	r := newArticleRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles?offset=10", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	// the seeded default limit (25) survives when only offset is sent
	if got := w.Header().Get("Content-Range"); got != "items 10-34/100" {
		t.Fatalf("unexpected Content-Range: %q", got)
	}
	if stub.list.page.Limit != 25 || stub.list.page.Offset != 10 {
		t.Fatalf("expected page 25/10, got %+v", stub.list.page)
	}
}

func TestArticleHandler_List_NonIntegerLimit(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles?limit=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("bad_request")) || !bytes.Contains(w.Body.Bytes(), []byte("abc")) {
		t.Fatalf("expected bad_request citing the raw value, body=%s", w.Body.String())
	}
}

func TestArticleHandler_ListByAuthor_OK(t *testing.T) {
	stub := &stubArticleService{}
	stub.byAuthor.res = repository.PageResult[model.Article]{Items: []model.Article{{ID: 5, AuthorID: 3}}, Total: 1}
	r := newArticleRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/authors/3/articles", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if stub.byAuthor.authorID != 3 {
		t.Fatalf("expected author id 3, got %d", stub.byAuthor.authorID)
	}
	if got := w.Header().Get("Content-Range"); got != "items 0-0/1" {
		t.Fatalf("unexpected Content-Range: %q", got)
	}
}

func TestArticleHandler_Get_BadID(t *testing.T) {
	stub := &stubArticleService{}
	r := newArticleRouter(stub)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/articles/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}
