package commentservice

import (
	"database/sql"
	"time"

	"github.com/sushihentaime/blogcms/internal/common"
)

type Comment struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int       `json:"authorId"`
	PostID    int       `json:"postId"`
	ParentID  *int      `json:"parentId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateCommentRequest struct {
	Content  string `json:"content"`
	AuthorID int    `json:"authorId"`
	PostID   int    `json:"postId"`
	ParentID *int   `json:"parentId"`
}

// CommentPatch carries the fields of a partial update. A parentId of 0
// detaches the comment from its parent.
type CommentPatch struct {
	Content  *string `json:"content"`
	AuthorID *int    `json:"authorId"`
	PostID   *int    `json:"postId"`
	ParentID *int    `json:"parentId"`
}

func (p *CommentPatch) apply(c *Comment) {
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.AuthorID != nil {
		c.AuthorID = *p.AuthorID
	}
	if p.PostID != nil {
		c.PostID = *p.PostID
	}
	if p.ParentID != nil {
		c.ParentID = normalizeParent(p.ParentID)
	}
}

// normalizeParent maps the zero id to no parent.
func normalizeParent(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	parent := *id
	return &parent
}

type CommentModel struct {
	db *sql.DB
}

type CommentService struct {
	m     *CommentModel
	users common.Resolver
	posts common.Resolver
}
