package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

var (
	errEndBeforeStart    = errors.New("endTime must be later than startTime")
	errRegWindowInverted = errors.New("registrationEnd must be later than registrationStart")
	errRegAfterStart     = errors.New("registration must close before the event starts")
)

type CreateEventRequest struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Cover             string    `json:"cover"`
	VenueID           uint      `json:"venueId"`
	Capacity          int       `json:"capacity"`
	Type              string    `json:"type"`
	Difficulty        int       `json:"difficulty"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	RegistrationStart time.Time `json:"registrationStart"`
	RegistrationEnd   time.Time `json:"registrationEnd"`
	FeeType           string    `json:"feeType"`
	FeeAmount         float64   `json:"feeAmount"`
	Status            string    `json:"status"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 15)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.VenueID, validation.Required),
		validation.Field(&req.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&req.Type, validation.In("badminton", "basketball", "soccer", "table-tennis", "tennis", "other")),
		validation.Field(&req.Difficulty, validation.Min(0), validation.Max(5)),
		validation.Field(&req.StartTime, validation.Required),
		validation.Field(&req.EndTime, validation.Required),
		validation.Field(&req.FeeType, validation.In("free", "split", "fixed")),
		validation.Field(&req.FeeAmount, validation.Min(0.0)),
		validation.Field(&req.Status, validation.In("public", "private", "apply-required")),
	)
	if err != nil {
		return err
	}

	if !req.EndTime.After(req.StartTime) {
		return errEndBeforeStart
	}

	if !req.RegistrationStart.IsZero() || !req.RegistrationEnd.IsZero() {
		if !req.RegistrationEnd.After(req.RegistrationStart) {
			return errRegWindowInverted
		}
		if req.RegistrationEnd.After(req.StartTime) {
			return errRegAfterStart
		}
	}

	return nil
}

type UpdateEventRequest struct {
	CreateEventRequest
}
