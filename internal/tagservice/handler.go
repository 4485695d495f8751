package tagservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogcms/internal/common"
)

func NewTagService(db *sql.DB) *TagService {
	return &TagService{m: newTagModel(db)}
}

func (s *TagService) GetTags(ctx context.Context) ([]Tag, error) {
	return s.m.getAll(ctx)
}

func (s *TagService) GetTagByID(ctx context.Context, id int) (*Tag, error) {
	return s.m.getByID(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, req *CreateTagRequest) (*Tag, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	t := Tag{Name: req.Name, Slug: req.Slug, Color: req.Color}

	v := common.NewValidator()
	validateTag(v, &t)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, &t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *TagService) UpdateTag(ctx context.Context, id int, patch *TagPatch) (*Tag, error) {
	t, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.apply(t)

	v := common.NewValidator()
	validateTag(v, t)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.update(ctx, t); err != nil {
		return nil, err
	}

	return t, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id int) error {
	return s.m.delete(ctx, id)
}
