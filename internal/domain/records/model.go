package records

import "time"

// Record es una entrada de diario. Sólo el autor la modifica o borra.
// El borrado es lógico: DeletedAt != nil.
type Record struct {
	ID       string
	PetID    string
	UserID   string
	Title    string
	Body     string
	IsPublic bool

	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r Record) Deleted() bool { return r.DeletedAt != nil }

// WorkResult es la respuesta de crear/modificar/borrar.
type WorkResult struct {
	ID      string
	Message string
}
