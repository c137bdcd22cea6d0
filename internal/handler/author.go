package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/maxviazov/article-catalog-service/internal/service"
	"github.com/maxviazov/article-catalog-service/pkg/response"
)

type AuthorHandler struct {
	svc          service.AuthorService
	defaultLimit int
}

func NewAuthorHandler(svc service.AuthorService, defaultLimit int) *AuthorHandler {
	return &AuthorHandler{svc: svc, defaultLimit: defaultLimit}
}

func (h *AuthorHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/authors")
	{
		g.POST("", h.create)
		// Use a stable wildcard name (author_id) so nested routes (articles) can reuse it without Gin conflicts.
		g.GET("/:author_id", h.getByID)
		g.GET("/:author_id/stats", h.getAggregatedStats)
		g.GET("", h.list)
	}
}

type createAuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *AuthorHandler) create(c *gin.Context) {
	var req createAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput) // не расшифровываем внутренние детали парсинга
		return
	}
	author, err := h.svc.CreateAuthor(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, author)
}

func (h *AuthorHandler) getByID(c *gin.Context) {
	idStr := c.Param("author_id")
	id, _ := strconv.ParseInt(idStr, 10, 64)
	author, err := h.svc.GetAuthor(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, author)
}

func (h *AuthorHandler) list(c *gin.Context) {
	rng, err := negotiateRange(c, h.defaultLimit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListAuthors(c.Request.Context(), repository.PageFromRange(rng))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	writeContentRange(c, rng, res.Total)
	response.WriteData(c, http.StatusOK, res)
}

// getAggregatedStats handles requests for an author's catalog footprint.
func (h *AuthorHandler) getAggregatedStats(c *gin.Context) {
	idStr := c.Param("author_id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "author_id", Message: "must be a valid integer"}}))
		return
	}
	stats, err := h.svc.GetAuthorAggregatedStats(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, stats)
}
