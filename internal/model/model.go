// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// Author represents a writer whose articles the catalog tracks.
type Author struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Article represents a single catalog entry belonging to an author.
type Article struct {
	ID          int64      `json:"id"`
	AuthorID    int64      `json:"author_id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Tags        []string   `json:"tags"`
	PublishedAt *time.Time `json:"published_at,omitempty"` // nil means draft
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Comment represents reader feedback attached to an article.
// Commenters are not catalog authors, so only a display name is kept.
type Comment struct {
	ID         int64     `json:"id"`
	ArticleID  int64     `json:"article_id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuthorAggregatedStats holds calculated statistics for an author.
// This model is designed for read-only query results and is not persisted directly.
type AuthorAggregatedStats struct {
	ArticlesTotal         int        `json:"articles_total"`
	ArticlesPublished     int        `json:"articles_published"`
	CommentsReceived      int        `json:"comments_received"`
	AvgCommentsPerArticle float64    `json:"avg_comments_per_article"`
	FirstPublishedAt      *time.Time `json:"first_published_at,omitempty"`
	LastPublishedAt       *time.Time `json:"last_published_at,omitempty"`
}
