package users

import "time"

// Role define el rol global del usuario.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// User es la cuenta registrada. El username es único y es la identidad que viaja en cada request.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Email        string
	Role         Role

	CreatedAt time.Time
	UpdatedAt time.Time
}
