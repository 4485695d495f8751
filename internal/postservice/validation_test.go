package postservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sushihentaime/blogcms/internal/common"
)

func TestValidatePost(t *testing.T) {
	valid := func() Post {
		return Post{Title: "Hello", Slug: "hello", Content: "body", Status: StatusDraft, AuthorID: 1}
	}

	testCases := []struct {
		name   string
		modify func(p *Post)
		want   map[string]string
	}{
		{name: "valid", modify: func(p *Post) {}, want: map[string]string{}},
		{name: "archived", modify: func(p *Post) { p.Status = StatusArchived }, want: map[string]string{}},
		{name: "blank title", modify: func(p *Post) { p.Title = "  " }, want: map[string]string{"title": "must be provided"}},
		{name: "empty slug", modify: func(p *Post) { p.Slug = "" }, want: map[string]string{"slug": "must be provided"}},
		{name: "empty content", modify: func(p *Post) { p.Content = "" }, want: map[string]string{"content": "must be provided"}},
		{name: "unknown status", modify: func(p *Post) { p.Status = "deleted" }, want: map[string]string{"status": "must be one of draft, published, archived"}},
		{name: "zero author", modify: func(p *Post) { p.AuthorID = 0 }, want: map[string]string{"authorId": "must be greater than zero"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.modify(&p)

			v := common.NewValidator()
			validatePost(v, &p)
			assert.Equal(t, tc.want, v.Errors)
		})
	}
}

func TestPostPatch_Apply(t *testing.T) {
	title := "New title"
	status := StatusArchived
	author := 7

	p := Post{ID: 3, Title: "Old", Slug: "old", Content: "body", Status: StatusDraft, AuthorID: 1}
	patch := PostPatch{Title: &title, Status: &status, AuthorID: &author}
	patch.apply(&p)

	assert.Equal(t, Post{ID: 3, Title: "New title", Slug: "old", Content: "body", Status: StatusArchived, AuthorID: 7}, p)
}

func TestCheckRequired(t *testing.T) {
	err := checkRequired(&CreatePostRequest{Title: "t", Slug: "s", Content: "c"})
	assert.Equal(t, common.RequiredFieldsError{Fields: []string{"title", "slug", "content", "authorId"}}, err)

	err = checkRequired(&CreatePostRequest{Title: "t", Slug: "s", Content: "c", AuthorID: 1})
	assert.NoError(t, err)
}
