package categoryservice

import "github.com/sushihentaime/blogcms/internal/common"

var requiredFields = []string{"name", "slug"}

func checkRequired(req *CreateCategoryRequest) error {
	if req.Name == "" || req.Slug == "" {
		return common.RequiredFieldsError{Fields: requiredFields}
	}
	return nil
}

func validateCategory(v *common.Validator, c *Category) {
	v.CheckNotBlank(c.Name, "name")
	v.CheckNotBlank(c.Slug, "slug")
}
