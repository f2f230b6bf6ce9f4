package records

import (
	"context"

	"pet-care-journal/internal/platform/pagination"
)

// Los listados excluyen borrados y van del más nuevo al más viejo.
type Repository interface {
	Create(ctx context.Context, r Record) error
	Update(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string) (Record, error)

	ListPublic(ctx context.Context, page pagination.Request) ([]Record, int, error)
	ListByPet(ctx context.Context, petID string, page pagination.Request) ([]Record, int, error)
}
