package postservice

import (
	"github.com/sushihentaime/blogcms/internal/common"
)

var requiredFields = []string{"title", "slug", "content", "authorId"}

func checkRequired(req *CreatePostRequest) error {
	if req.Title == "" || req.Slug == "" || req.Content == "" || req.AuthorID == 0 {
		return common.RequiredFieldsError{Fields: requiredFields}
	}
	return nil
}

func validatePost(v *common.Validator, p *Post) {
	v.CheckNotBlank(p.Title, "title")
	v.CheckNotBlank(p.Slug, "slug")
	v.CheckNotBlank(p.Content, "content")
	v.Check(common.PermittedValue(p.Status, StatusDraft, StatusPublished, StatusArchived), "status", "must be one of draft, published, archived")
	v.CheckPositive(p.AuthorID, "authorId")
}
