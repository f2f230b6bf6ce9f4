package schedules

import (
	"context"

	"pet-care-journal/internal/platform/pagination"
)

// SortFields son los campos por los que se puede ordenar el listado.
var SortFields = map[string]bool{
	"category":   true,
	"due_date":   true,
	"created_at": true,
	"title":      true,
}

type Repository interface {
	Create(ctx context.Context, s Schedule) error
	Update(ctx context.Context, s Schedule) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Schedule, error)
	ListByPet(ctx context.Context, petID string, page pagination.Request) ([]Schedule, int, error)
}
