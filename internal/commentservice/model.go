package commentservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sushihentaime/blogcms/internal/common"
)

func newCommentModel(db *sql.DB) *CommentModel {
	return &CommentModel{db: db}
}

func (m *CommentModel) insert(ctx context.Context, c *Comment) error {
	query := `
		INSERT INTO comments (content, author_id, post_id, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	return m.db.QueryRowContext(ctx, query, c.Content, c.AuthorID, c.PostID, c.ParentID).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

func (m *CommentModel) getAll(ctx context.Context) ([]Comment, error) {
	query := `
		SELECT id, content, author_id, post_id, parent_id, created_at, updated_at
		FROM comments
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (m *CommentModel) getByID(ctx context.Context, id int) (*Comment, error) {
	query := `
		SELECT id, content, author_id, post_id, parent_id, created_at, updated_at
		FROM comments
		WHERE id = $1`

	var c Comment
	err := m.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Content, &c.AuthorID, &c.PostID, &c.ParentID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &c, nil
}

func (m *CommentModel) update(ctx context.Context, c *Comment) error {
	query := `
		UPDATE comments
		SET content = $1, author_id = $2, post_id = $3, parent_id = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING updated_at`

	err := m.db.QueryRowContext(ctx, query, c.Content, c.AuthorID, c.PostID, c.ParentID, c.ID).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrRecordNotFound
		}
		return err
	}

	return nil
}

func (m *CommentModel) delete(ctx context.Context, id int) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if rows != 1 {
		switch rows {
		case 0:
			return common.ErrRecordNotFound
		default:
			return fmt.Errorf("expected 1 row to be affected, got %d", rows)
		}
	}

	return nil
}

func (m *CommentModel) exists(ctx context.Context, id int) (bool, error) {
	var ok bool
	err := m.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, id).Scan(&ok)
	return ok, err
}
