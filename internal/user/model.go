package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest payload de registro.
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name"     example:"Asha"`
	Email    string `json:"email"    example:"a@x.com"`
	Password string `json:"password" example:"s3cret"`
}

// LoginRequest payload de login.
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email"    example:"a@x.com"`
	Password string `json:"password" example:"s3cret"`
}
