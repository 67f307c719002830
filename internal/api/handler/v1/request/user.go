package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	errInvalidGender = errors.New("gender must be 0 (female), 1 (male) or 2 (secret)")
	errInvalidRole   = errors.New("role must be 0 (member) or 100 (admin)")
)

// UpdateUserRequest carries profile changes. Zero-value fields mean
// "leave unchanged"; Gender is a pointer because 0 is a legal value.
type UpdateUserRequest struct {
	Nickname  string `json:"nickname"`
	Avatar    string `json:"avatar"`
	Gender    *int   `json:"gender"`
	Introduce string `json:"introduce"`
	Password  string `json:"password"`
	Role      *int   `json:"role"`
}

func (req *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Nickname, validation.Length(0, 20)),
		validation.Field(&req.Avatar, is.URL),
		validation.Field(&req.Introduce, validation.Length(0, 500)),
	)
	if err != nil {
		return err
	}

	if req.Gender != nil && (*req.Gender < 0 || *req.Gender > 2) {
		return errInvalidGender
	}

	if req.Role != nil && *req.Role != 0 && *req.Role != 100 {
		return errInvalidRole
	}

	if req.Password != "" {
		ok, err := passwordExp.MatchString(req.Password)
		if err != nil || !ok {
			return errInvalidPassword
		}
	}

	return nil
}

// CreateUserRequest is the admin-side user creation payload. Unlike public
// registration it may set the role.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Role     int    `json:"role"`
}

func (req *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required, validation.Length(2, 20)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.Nickname, validation.Length(0, 20)),
	)
	if err != nil {
		return err
	}

	if req.Role != 0 && req.Role != 100 {
		return errInvalidRole
	}

	ok, err := passwordExp.MatchString(req.Password)
	if err != nil || !ok {
		return errInvalidPassword
	}

	return nil
}
