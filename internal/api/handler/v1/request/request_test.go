package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	valid := RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1234",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RegisterRequest) {}},
		{name: "username too short", mutate: func(r *RegisterRequest) { r.Username = "a" }, wantErr: true},
		{name: "username too long", mutate: func(r *RegisterRequest) { r.Username = "abcdefghijklmnopqrstu" }, wantErr: true},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "password too short", mutate: func(r *RegisterRequest) { r.Password = "ab1" }, wantErr: true},
		{name: "password without digits", mutate: func(r *RegisterRequest) { r.Password = "onlyletters" }, wantErr: true},
		{name: "password without letters", mutate: func(r *RegisterRequest) { r.Password = "12345678" }, wantErr: true},
		{name: "missing password", mutate: func(r *RegisterRequest) { r.Password = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateVenueRequestValidate(t *testing.T) {
	valid := CreateVenueRequest{
		Name:      "city gym",
		Location:  "100 main street",
		Latitude:  48.85,
		Longitude: 2.35,
		OpenTime:  "08:00:00",
		CloseTime: "22:00:00",
		Status:    "available",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateVenueRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateVenueRequest) {}},
		{name: "name too short", mutate: func(r *CreateVenueRequest) { r.Name = "x" }, wantErr: true},
		{name: "latitude out of range", mutate: func(r *CreateVenueRequest) { r.Latitude = 91 }, wantErr: true},
		{name: "longitude out of range", mutate: func(r *CreateVenueRequest) { r.Longitude = -181 }, wantErr: true},
		{name: "bad open time", mutate: func(r *CreateVenueRequest) { r.OpenTime = "8:00" }, wantErr: true},
		{name: "bad close time", mutate: func(r *CreateVenueRequest) { r.CloseTime = "25:00:00" }, wantErr: true},
		{name: "close before open", mutate: func(r *CreateVenueRequest) { r.CloseTime = "07:00:00" }, wantErr: true},
		{name: "unknown status", mutate: func(r *CreateVenueRequest) { r.Status = "demolished" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateEventRequestValidate(t *testing.T) {
	start := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)

	valid := CreateEventRequest{
		Title:             "friday five",
		VenueID:           1,
		Capacity:          10,
		Type:              "soccer",
		Difficulty:        3,
		StartTime:         start,
		EndTime:           start.Add(2 * time.Hour),
		RegistrationStart: start.Add(-48 * time.Hour),
		RegistrationEnd:   start.Add(-2 * time.Hour),
		FeeType:           "split",
		Status:            "public",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateEventRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateEventRequest) {}},
		{name: "title too short", mutate: func(r *CreateEventRequest) { r.Title = "x" }, wantErr: true},
		{name: "title too long", mutate: func(r *CreateEventRequest) { r.Title = "a very long event title" }, wantErr: true},
		{name: "missing venue", mutate: func(r *CreateEventRequest) { r.VenueID = 0 }, wantErr: true},
		{name: "zero capacity", mutate: func(r *CreateEventRequest) { r.Capacity = 0 }, wantErr: true},
		{name: "unknown type", mutate: func(r *CreateEventRequest) { r.Type = "curling" }, wantErr: true},
		{name: "difficulty out of range", mutate: func(r *CreateEventRequest) { r.Difficulty = 6 }, wantErr: true},
		{name: "end before start", mutate: func(r *CreateEventRequest) { r.EndTime = start.Add(-time.Hour) }, wantErr: true},
		{name: "registration window inverted", mutate: func(r *CreateEventRequest) {
			r.RegistrationStart, r.RegistrationEnd = r.RegistrationEnd, r.RegistrationStart
		}, wantErr: true},
		{name: "registration closes after start", mutate: func(r *CreateEventRequest) {
			r.RegistrationEnd = start.Add(time.Hour)
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateGroupRequestValidate(t *testing.T) {
	valid := CreateGroupRequest{
		Name:     "team red",
		EventID:  1,
		Capacity: 6,
		Status:   "public",
	}

	tests := []struct {
		name    string
		mutate  func(r *CreateGroupRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *CreateGroupRequest) {}},
		{name: "capacity below minimum", mutate: func(r *CreateGroupRequest) { r.Capacity = 1 }, wantErr: true},
		{name: "capacity above maximum", mutate: func(r *CreateGroupRequest) { r.Capacity = 13 }, wantErr: true},
		{name: "capacity omitted is fine", mutate: func(r *CreateGroupRequest) { r.Capacity = 0 }},
		{name: "missing event", mutate: func(r *CreateGroupRequest) { r.EventID = 0 }, wantErr: true},
		{name: "name too long", mutate: func(r *CreateGroupRequest) { r.Name = "0123456789012345678901234567890" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRequestValidate(t *testing.T) {
	badGender := 3
	goodGender := 1
	badRole := 50

	tests := []struct {
		name    string
		req     UpdateUserRequest
		wantErr bool
	}{
		{name: "empty update", req: UpdateUserRequest{}},
		{name: "nickname ok", req: UpdateUserRequest{Nickname: "ace"}},
		{name: "nickname too long", req: UpdateUserRequest{Nickname: "012345678901234567890"}, wantErr: true},
		{name: "gender ok", req: UpdateUserRequest{Gender: &goodGender}},
		{name: "gender out of range", req: UpdateUserRequest{Gender: &badGender}, wantErr: true},
		{name: "role out of range", req: UpdateUserRequest{Role: &badRole}, wantErr: true},
		{name: "weak new password", req: UpdateUserRequest{Password: "short"}, wantErr: true},
		{name: "strong new password", req: UpdateUserRequest{Password: "secret1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCommentRequestValidate(t *testing.T) {
	assert.NoError(t, (&CreateCommentRequest{Content: "count me in"}).Validate())
	assert.Error(t, (&CreateCommentRequest{}).Validate())

	long := make([]byte, 501)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, (&CreateCommentRequest{Content: string(long)}).Validate())
}
