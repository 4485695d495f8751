package common

import (
	"context"
	"fmt"
)

// Resolver answers whether a row with the given id exists.
type Resolver interface {
	Exists(ctx context.Context, id int) (bool, error)
}

type ResolverFunc func(ctx context.Context, id int) (bool, error)

func (f ResolverFunc) Exists(ctx context.Context, id int) (bool, error) {
	return f(ctx, id)
}

// ReferenceError names a foreign key that did not resolve. It matches
// ErrReferenceNotFound with errors.Is.
type ReferenceError struct {
	Field  string
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	return e.Entity + " not found"
}

func (e *ReferenceError) Unwrap() error {
	return ErrReferenceNotFound
}

// CheckReference looks id up through r. The lookup is not transactional with
// whatever write follows it.
func CheckReference(ctx context.Context, r Resolver, field, entity string, id int) error {
	ok, err := r.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("could not resolve %s: %w", field, err)
	}

	if !ok {
		return &ReferenceError{Field: field, Entity: entity, ID: id}
	}

	return nil
}
