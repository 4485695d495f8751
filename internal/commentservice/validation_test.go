package commentservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogcms/internal/common"
)

func TestValidateComment(t *testing.T) {
	testCases := []struct {
		name    string
		comment Comment
		field   string
	}{
		{name: "valid", comment: Comment{Content: "hi", AuthorID: 1, PostID: 1}},
		{name: "valid reply", comment: Comment{ID: 2, Content: "hi", AuthorID: 1, PostID: 1, ParentID: intptr(1)}},
		{name: "blank content", comment: Comment{Content: "  ", AuthorID: 1, PostID: 1}, field: "content"},
		{name: "negative author", comment: Comment{Content: "hi", AuthorID: -1, PostID: 1}, field: "authorId"},
		{name: "negative post", comment: Comment{Content: "hi", AuthorID: 1, PostID: -3}, field: "postId"},
		{name: "negative parent", comment: Comment{Content: "hi", AuthorID: 1, PostID: 1, ParentID: intptr(-1)}, field: "parentId"},
		{name: "self parent", comment: Comment{ID: 4, Content: "hi", AuthorID: 1, PostID: 1, ParentID: intptr(4)}, field: "parentId"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := common.NewValidator()
			validateComment(v, &tc.comment)

			if tc.field == "" {
				assert.True(t, v.Valid())
				return
			}
			assert.Contains(t, v.Errors, tc.field)
		})
	}
}

func TestNormalizeParent(t *testing.T) {
	assert.Nil(t, normalizeParent(nil))
	assert.Nil(t, normalizeParent(intptr(0)))
	assert.Equal(t, 7, *normalizeParent(intptr(7)))
}
