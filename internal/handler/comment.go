package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/repository"
	"github.com/maxviazov/article-catalog-service/internal/service"
	"github.com/maxviazov/article-catalog-service/pkg/response"
)

type CommentHandler struct {
	svc          service.CommentService
	defaultLimit int
}

func NewCommentHandler(svc service.CommentService, defaultLimit int) *CommentHandler {
	return &CommentHandler{svc: svc, defaultLimit: defaultLimit}
}

func (h *CommentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/articles/:id/comments")
	{
		g.POST("", h.create)
		g.GET("", h.listByArticle)
	}
}

type createCommentRequest struct {
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
}

func (h *CommentHandler) create(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	comment, err := h.svc.AddComment(c.Request.Context(), articleID, req.AuthorName, req.Body)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, comment)
}

func (h *CommentHandler) listByArticle(c *gin.Context) {
	articleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.WriteError(c, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a valid integer"}}))
		return
	}
	rng, err := negotiateRange(c, h.defaultLimit)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	res, err := h.svc.ListCommentsByArticle(c.Request.Context(), articleID, repository.PageFromRange(rng))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	writeContentRange(c, rng, res.Total)
	response.WriteData(c, http.StatusOK, res)
}
