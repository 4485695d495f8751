package commentservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogcms/internal/common"
)

// NewCommentService returns a service that resolves authorId through users
// and postId through posts. parentId resolves against the comments table.
func NewCommentService(db *sql.DB, users, posts common.Resolver) *CommentService {
	return &CommentService{m: newCommentModel(db), users: users, posts: posts}
}

func (s *CommentService) GetComments(ctx context.Context) ([]Comment, error) {
	return s.m.getAll(ctx)
}

func (s *CommentService) GetCommentByID(ctx context.Context, id int) (*Comment, error) {
	return s.m.getByID(ctx, id)
}

func (s *CommentService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*Comment, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	c := Comment{
		Content:  req.Content,
		AuthorID: req.AuthorID,
		PostID:   req.PostID,
		ParentID: normalizeParent(req.ParentID),
	}

	v := common.NewValidator()
	validateComment(v, &c)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.checkReferences(ctx, &c, true, true, c.ParentID != nil); err != nil {
		return nil, err
	}

	if err := s.m.insert(ctx, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// UpdateComment merges patch onto the stored comment and resolves only the
// references the patch sets.
func (s *CommentService) UpdateComment(ctx context.Context, id int, patch *CommentPatch) (*Comment, error) {
	c, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.apply(c)

	v := common.NewValidator()
	validateComment(v, c)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	err = s.checkReferences(ctx, c, patch.AuthorID != nil, patch.PostID != nil, patch.ParentID != nil && c.ParentID != nil)
	if err != nil {
		return nil, err
	}

	if err := s.m.update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, id int) error {
	return s.m.delete(ctx, id)
}

func (s *CommentService) checkReferences(ctx context.Context, c *Comment, author, post, parent bool) error {
	if author {
		if err := common.CheckReference(ctx, s.users, "authorId", "Author", c.AuthorID); err != nil {
			return err
		}
	}

	if post {
		if err := common.CheckReference(ctx, s.posts, "postId", "Post", c.PostID); err != nil {
			return err
		}
	}

	if parent {
		if err := common.CheckReference(ctx, common.ResolverFunc(s.m.exists), "parentId", "Parent comment", *c.ParentID); err != nil {
			return err
		}
	}

	return nil
}
