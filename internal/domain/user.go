package domain

import "time"

const (
	RoleMember = 0
	RoleAdmin  = 100
)

const (
	GenderFemale = 0
	GenderMale   = 1
	GenderSecret = 2
)

type User struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Nickname    string    `json:"nickname"`
	Password    string    `json:"-"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      int       `json:"gender"`
	Avatar      string    `json:"avatar"`
	Introduce   string    `json:"introduce"`
	Role        int       `json:"role"`
	Level       int       `json:"level"`
	CreditScore int       `json:"credit_score"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserSummary is the public slice of a user embedded in other resources.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

// UserFilter narrows admin user listings. Empty fields are ignored.
type UserFilter struct {
	Username string
	Nickname string
	Email    string
	Phone    string
}
