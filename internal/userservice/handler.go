package userservice

import (
	"context"
	"database/sql"

	"github.com/sushihentaime/blogcms/internal/common"
)

func NewUserService(db *sql.DB) *UserService {
	return &UserService{m: newUserModel(db)}
}

// GetUsers returns every user in insertion order.
func (s *UserService) GetUsers(ctx context.Context) ([]User, error) {
	return s.m.getAll(ctx)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (*User, error) {
	return s.m.getByID(ctx, id)
}

// CreateUser checks the required fields, validates the new user and stores it.
func (s *UserService) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if err := checkRequired(req); err != nil {
		return nil, err
	}

	u := User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	}

	v := common.NewValidator()
	validateUser(v, &u)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.insert(ctx, &u); err != nil {
		return nil, err
	}

	return &u, nil
}

// UpdateUser merges patch onto the stored user and saves the result.
func (s *UserService) UpdateUser(ctx context.Context, id int, patch *UserPatch) (*User, error) {
	u, err := s.m.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.apply(u)

	v := common.NewValidator()
	validateUser(v, u)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	if err := s.m.update(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// DeleteUser removes the user row only. Posts and comments written by the
// user keep their authorId.
func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.m.delete(ctx, id)
}

// Exists lets the user service act as a common.Resolver for authorId.
func (s *UserService) Exists(ctx context.Context, id int) (bool, error) {
	return s.m.exists(ctx, id)
}
