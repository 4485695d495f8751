package common

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// UniqueViolation reports whether err is a postgres unique constraint error on
// the named constraint.
func UniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == "23505" && pqErr.Constraint == constraint {
			return true
		}
	}

	return false
}
