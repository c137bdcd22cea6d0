package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/maxviazov/article-catalog-service/internal/service"
	"github.com/maxviazov/article-catalog-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type ArticleHandler struct {
	svc          service.ArticleService
	defaultLimit int
}

func NewArticleHandler(svc service.ArticleService, defaultLimit int) *ArticleHandler {
	return &ArticleHandler{svc: svc, defaultLimit: defaultLimit}
}

func (h *ArticleHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/articles")
	{
		g.POST("", h.create)
		g.GET("/:id", h.getByID)
		g.GET("", h.list)
	}
	// Nested listing: /api/v1/authors/:author_id/articles
	r.Group("/authors").GET("/:author_id/articles", h.listByAuthor)
}

type createArticleRequest struct {
	AuthorID    int64    `json:"author_id"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"published_at"` // RFC3339, empty means draft
}

func (h *ArticleHandler) create(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	var publishedAt *time.Time
	if req.PublishedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.PublishedAt)
		if err != nil {
			response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "published_at", Message: "must be RFC3339"}}))
			return
		}
		publishedAt = &parsed
	}
	article, err := h.svc.CreateArticle(c.Request.Context(), req.AuthorID, req.Title, req.Body, req.Tags, publishedAt)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, article)
}

func (h *ArticleHandler) getByID(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	article, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, article)
}

func (h *ArticleHandler) list(c *gin.Context) {
	start := time.Now()
	rng, err := negotiateRange(c, h.defaultLimit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListArticles(c.Request.Context(), repository.PageFromRange(rng))

	logger := log.With().
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Dur("duration", time.Since(start)).
		Logger()

	if err != nil {
		status, _ := response.MapError(err)
		logger.Error().Err(err).Int("status", status).Msg("failed to list articles")
		response.WriteError(c, err)
		return
	}

	writeContentRange(c, rng, res.Total)
	logger.Info().Int("status", http.StatusOK).Str("content_range", rng.ContentRange(int64(res.Total))).Msg("articles listed")
	response.WriteData(c, http.StatusOK, res)
}

func (h *ArticleHandler) listByAuthor(c *gin.Context) {
	idStr := c.Param("author_id")
	authorID, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "author_id", Message: "must be a valid integer"}}))
		return
	}
	rng, err := negotiateRange(c, h.defaultLimit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListArticlesByAuthor(c.Request.Context(), authorID, repository.PageFromRange(rng))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	writeContentRange(c, rng, res.Total)
	response.WriteData(c, http.StatusOK, res)
}
