package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckReference(t *testing.T) {
	rows := map[int]bool{1: true, 2: true}
	lookup := ResolverFunc(func(_ context.Context, id int) (bool, error) {
		return rows[id], nil
	})
	errLookup := errors.New("connection refused")
	failing := ResolverFunc(func(_ context.Context, id int) (bool, error) {
		return false, errLookup
	})

	testCases := []struct {
		name     string
		resolver Resolver
		id       int
		wantErr  error
		wantRef  bool
	}{
		{name: "existing row", resolver: lookup, id: 1},
		{name: "missing row", resolver: lookup, id: 3, wantErr: ErrReferenceNotFound, wantRef: true},
		{name: "lookup failure", resolver: failing, id: 1, wantErr: errLookup},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckReference(context.Background(), tc.resolver, "authorId", "Author", tc.id)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, tc.wantErr)

			var refErr *ReferenceError
			assert.Equal(t, tc.wantRef, errors.As(err, &refErr))
			if tc.wantRef {
				assert.Equal(t, "Author not found", refErr.Error())
				assert.Equal(t, "authorId", refErr.Field)
				assert.Equal(t, tc.id, refErr.ID)
			}
		})
	}
}
