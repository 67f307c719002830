package response

import (
	"github.com/sportsmate/sportsmate-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
