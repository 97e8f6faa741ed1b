package handler

import "github.com/sahyog/medical-store/internal/core/domain"

// messageResponse is the canonical envelope for errors and confirmations.
type messageResponse struct {
	Message string `json:"message"`
}

// publicUser is the user view exposed over the API. The password hash
// never appears here.
type publicUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Address string `json:"address"`
}

func toPublicUser(u *domain.User) publicUser {
	return publicUser{
		ID:      u.ID,
		Email:   u.Email,
		Role:    u.Role,
		Address: u.Address,
	}
}
