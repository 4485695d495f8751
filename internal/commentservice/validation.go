package commentservice

import "github.com/sushihentaime/blogcms/internal/common"

var requiredFields = []string{"content", "authorId", "postId"}

func checkRequired(req *CreateCommentRequest) error {
	if req.Content == "" || req.AuthorID == 0 || req.PostID == 0 {
		return common.RequiredFieldsError{Fields: requiredFields}
	}
	return nil
}

func validateComment(v *common.Validator, c *Comment) {
	v.CheckNotBlank(c.Content, "content")
	v.CheckPositive(c.AuthorID, "authorId")
	v.CheckPositive(c.PostID, "postId")
	if c.ParentID != nil {
		v.CheckPositive(*c.ParentID, "parentId")
		if c.ID != 0 {
			v.Check(*c.ParentID != c.ID, "parentId", "must not reference the comment itself")
		}
	}
}
