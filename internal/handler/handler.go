package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/maxviazov/article-catalog-service/internal/service"
)

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies plus the default page limit used when
// a request carries no pagination signals at all.
func Register(r *gin.Engine, repo Pinger, authorSvc service.AuthorService, articleSvc service.ArticleService, commentSvc service.CommentService, defaultLimit int) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewAuthorHandler(authorSvc, defaultLimit).Register(api)
		NewArticleHandler(articleSvc, defaultLimit).Register(api)
		NewCommentHandler(commentSvc, defaultLimit).Register(api)
	}
}
