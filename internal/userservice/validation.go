package userservice

import (
	"github.com/sushihentaime/blogcms/internal/common"
)

var requiredFields = []string{"email", "username", "firstName", "lastName"}

func checkRequired(req *CreateUserRequest) error {
	if req.Email == "" || req.Username == "" || req.FirstName == "" || req.LastName == "" {
		return common.RequiredFieldsError{Fields: requiredFields}
	}
	return nil
}

func validateUser(v *common.Validator, u *User) {
	v.CheckEmail(u.Email, "email")
	v.CheckNotBlank(u.Username, "username")
	v.CheckNotBlank(u.FirstName, "firstName")
	v.CheckNotBlank(u.LastName, "lastName")
}
