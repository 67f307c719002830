package request

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	timeOfDayRegexPattern = `^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`
)

var (
	timeOfDayExp = regexp.MustCompile(timeOfDayRegexPattern)

	errCloseBeforeOpen = errors.New("closeTime must be later than openTime")
)

type CreateVenueRequest struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Cover       string  `json:"cover"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OpenTime    string  `json:"openTime"`
	CloseTime   string  `json:"closeTime"`
	Status      string  `json:"status"`
}

func (req *CreateVenueRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Latitude, validation.Min(-90.0), validation.Max(90.0)),
		validation.Field(&req.Longitude, validation.Min(-180.0), validation.Max(180.0)),
		validation.Field(&req.OpenTime, validation.Required, validation.Match(timeOfDayExp)),
		validation.Field(&req.CloseTime, validation.Required, validation.Match(timeOfDayExp)),
		validation.Field(&req.Status, validation.In("available", "maintenance", "closed")),
	)
	if err != nil {
		return err
	}

	// HH:mm:ss is fixed width, so string order is time order.
	if req.CloseTime <= req.OpenTime {
		return errCloseBeforeOpen
	}

	return nil
}

type UpdateVenueRequest struct {
	CreateVenueRequest
}
