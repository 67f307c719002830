package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	EventID     uint   `json:"eventId"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
}

func (req *CreateGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 30)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.EventID, validation.Required),
		validation.Field(&req.Capacity, validation.Min(2), validation.Max(12)),
		validation.Field(&req.Status, validation.In("public", "private", "apply-required", "closed")),
	)
}

type UpdateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (req *UpdateGroupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 30)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Status, validation.In("public", "private", "apply-required", "closed")),
	)
}

// AddMemberRequest is the admin payload for direct member insertion.
type AddMemberRequest struct {
	UserID uint `json:"userId"`
}

func (req *AddMemberRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
	)
}
