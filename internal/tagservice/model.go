package tagservice

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sushihentaime/blogcms/internal/common"
)

var (
	ErrDuplicateName = errors.New("duplicate tag name")
	ErrDuplicateSlug = errors.New("duplicate tag slug")
)

func newTagModel(db *sql.DB) *TagModel {
	return &TagModel{db: db}
}

// uniqueError translates unique constraint violations on tags.
func uniqueError(err error) error {
	switch {
	case common.UniqueViolation(err, "tags_name_key"):
		return ErrDuplicateName
	case common.UniqueViolation(err, "tags_slug_key"):
		return ErrDuplicateSlug
	default:
		return err
	}
}

func (m *TagModel) insert(ctx context.Context, t *Tag) error {
	query := `
		INSERT INTO tags (name, slug, color)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	err := m.db.QueryRowContext(ctx, query, t.Name, t.Slug, t.Color).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return uniqueError(err)
	}

	return nil
}

func (m *TagModel) getAll(ctx context.Context) ([]Tag, error) {
	query := `
		SELECT id, name, slug, color, created_at, updated_at
		FROM tags
		ORDER BY id`

	rows, err := m.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []Tag{}
	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

func (m *TagModel) getByID(ctx context.Context, id int) (*Tag, error) {
	query := `
		SELECT id, name, slug, color, created_at, updated_at
		FROM tags
		WHERE id = $1`

	var t Tag
	err := m.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Slug, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, common.ErrRecordNotFound
		default:
			return nil, err
		}
	}

	return &t, nil
}

func (m *TagModel) update(ctx context.Context, t *Tag) error {
	query := `
		UPDATE tags
		SET name = $1, slug = $2, color = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`

	err := m.db.QueryRowContext(ctx, query, t.Name, t.Slug, t.Color, t.ID).Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrRecordNotFound
		}
		return uniqueError(err)
	}

	return nil
}

func (m *TagModel) delete(ctx context.Context, id int) error {
	res, err := m.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return common.ErrRecordNotFound
	}

	return nil
}
