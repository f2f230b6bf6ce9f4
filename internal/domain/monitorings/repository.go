package monitorings

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, m Monitoring) error
	Update(ctx context.Context, m Monitoring) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Monitoring, error)

	ExistsByPetAndDate(ctx context.Context, petID string, date time.Time) (bool, error)
	// ListBetween devuelve start <= date <= end ordenado por fecha asc.
	ListBetween(ctx context.Context, petID string, start, end time.Time) ([]Monitoring, error)
}
