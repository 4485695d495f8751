package categoryservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogcms/internal/common"
)

func NewCategoryService(db *sql.DB) *CategoryService {
	return &CategoryService{m: newCategoryModel(db)}
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]Category, error) {
	return s.m.getAll(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int) (*Category, error) {
	return s.m.getByID(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*Category, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	c := Category{Name: req.Name, Slug: req.Slug, Description: req.Description}

	v := common.NewValidator()
	validateCategory(v, &c)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int, patch *CategoryPatch) (*Category, error) {
	c, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.apply(c)

	v := common.NewValidator()
	validateCategory(v, c)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int) error {
	return s.m.delete(ctx, id)
}
