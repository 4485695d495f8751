package tagservice

import "github.com/sushihentaime/blogcms/internal/common"

var requiredFields = []string{"name", "slug"}

func checkRequired(req *CreateTagRequest) error {
	if req.Name == "" || req.Slug == "" {
		return common.RequiredFieldsError{Fields: requiredFields}
	}
	return nil
}

func validateTag(v *common.Validator, t *Tag) {
	v.CheckNotBlank(t.Name, "name")
	v.CheckNotBlank(t.Slug, "slug")
}
