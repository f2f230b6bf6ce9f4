package groups

import "time"

type Group struct {
	ID          string
	Name        string
	OwnerUserID string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserGroup es la membresía. Una sola fila por (usuario, grupo).
type UserGroup struct {
	ID          string
	UserID      string
	GroupID     string
	RoleInGroup string // texto libre: "mamá", "paseador", etc.
	IsOwner     bool

	CreatedAt time.Time
}

// Member es la vista de un miembro con los datos de su usuario.
type Member struct {
	UserID      string
	Username    string
	Email       string
	RoleInGroup string
	IsOwner     bool
	JoinedAt    time.Time
}
