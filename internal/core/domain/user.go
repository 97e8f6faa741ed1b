package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. Email is stored lowercase and is
// unique across the users collection.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      string    `json:"address"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
