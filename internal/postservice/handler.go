package postservice

import (
	"context"
	"database/sql"
	"time"

	"github.com/sushihentaime/blogcms/internal/common"
)

// NewPostService returns a service that resolves authorId through users.
func NewPostService(db *sql.DB, users common.Resolver) *PostService {
	return &PostService{m: newPostModel(db), users: users}
}

// publishedNow truncates to the microsecond precision postgres stores.
func publishedNow() *time.Time {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &now
}

func (s *PostService) GetPosts(ctx context.Context) ([]Post, error) {
	return s.m.getPosts(ctx)
}

func (s *PostService) GetPostByID(ctx context.Context, id int) (*Post, error) {
	return s.m.getPostById(ctx, id)
}

// CreatePost stores a new post. The status defaults to draft. A client
// publishedAt is only kept for a post created as published, which otherwise
// is stamped with the current time.
func (s *PostService) CreatePost(ctx context.Context, req *CreatePostRequest) (*Post, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	p := Post{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       sanitizeMarkdown(req.Content),
		Excerpt:       req.Excerpt,
		FeaturedImage: req.FeaturedImage,
		Status:        req.Status,
		AuthorID:      req.AuthorID,
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Status == StatusPublished {
		p.PublishedAt = req.PublishedAt
	}

	v := common.NewValidator()
	validatePost(v, &p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := common.CheckReference(ctx, s.users, "authorId", "Author", p.AuthorID); err != nil {
		return nil, err
	}

	if p.Status == StatusPublished && p.PublishedAt == nil {
		p.PublishedAt = publishedNow()
	}

	if err := s.m.insert(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdatePost merges patch onto the stored post. authorId is only resolved
// again when the patch sets it. Moving to published stamps publishedAt
// unless the post already has one. A patched publishedAt is ignored unless
// the post ends up published.
func (s *PostService) UpdatePost(ctx context.Context, id int, patch *PostPatch) (*Post, error) {
	p, err := s.m.getPostById(ctx, id)
	if err != nil {
		return nil, err
	}

	stored := p.PublishedAt
	patch.apply(p)
	if p.Status != StatusPublished {
		p.PublishedAt = stored
	}
	p.Content = sanitizeMarkdown(p.Content)

	v := common.NewValidator()
	validatePost(v, p)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if patch.AuthorID != nil {
		if err := common.CheckReference(ctx, s.users, "authorId", "Author", p.AuthorID); err != nil {
			return nil, err
		}
	}

	if p.Status == StatusPublished && p.PublishedAt == nil {
		p.PublishedAt = publishedNow()
	}

	if err := s.m.updatePost(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePost removes the post. Its comments are left in place.
func (s *PostService) DeletePost(ctx context.Context, id int) error {
	return s.m.deletePost(ctx, id)
}

// Exists lets the post service act as a common.Resolver for postId.
func (s *PostService) Exists(ctx context.Context, id int) (bool, error) {
	return s.m.exists(ctx, id)
}
