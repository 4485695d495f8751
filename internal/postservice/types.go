package postservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogcms/internal/common"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
	// Content is stored in Markdown format.
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Status        Status     `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt"`
	AuthorID      int        `json:"authorId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CreatePostRequest struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Status        Status     `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt"`
	AuthorID      int        `json:"authorId"`
}

// PostPatch carries the fields of a partial update. A nil field is left
// unchanged.
type PostPatch struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Status        *Status    `json:"status"`
	PublishedAt   *time.Time `json:"publishedAt"`
	AuthorID      *int       `json:"authorId"`
}

func (p *PostPatch) apply(post *Post) {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Excerpt != nil {
		post.Excerpt = p.Excerpt
	}
	if p.FeaturedImage != nil {
		post.FeaturedImage = p.FeaturedImage
	}
	if p.Status != nil {
		post.Status = *p.Status
	}
	if p.PublishedAt != nil {
		post.PublishedAt = p.PublishedAt
	}
	if p.AuthorID != nil {
		post.AuthorID = *p.AuthorID
	}
}

type PostModel struct {
	db *sql.DB
}

type PostService struct {
	m     *PostModel
	users common.Resolver
}
