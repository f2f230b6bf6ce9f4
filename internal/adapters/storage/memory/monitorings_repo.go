package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"pet-care-journal/internal/domain/monitorings"
	"pet-care-journal/internal/platform/apperr"
)

type monitoringRepo struct {
	mu   sync.RWMutex
	byID map[string]monitorings.Monitoring
}

func NewMonitoringRepo() monitorings.Repository {
	return &monitoringRepo{
		byID: make(map[string]monitorings.Monitoring),
	}
}

func (r *monitoringRepo) Create(ctx context.Context, m monitorings.Monitoring) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("monitoring id required")
	}
	// Igual que el unique index (pet_id, date) de Postgres
	if r.existsLocked(m.PetID, m.Date, "") {
		return apperr.InvalidRequest("monitoring already exists for date")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *monitoringRepo) Update(ctx context.Context, m monitorings.Monitoring) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return ErrNotFound
	}
	if r.existsLocked(m.PetID, m.Date, m.ID) {
		return apperr.InvalidRequest("monitoring already exists for date")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *monitoringRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *monitoringRepo) GetByID(ctx context.Context, id string) (monitorings.Monitoring, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return monitorings.Monitoring{}, ErrNotFound
	}
	return m, nil
}

func (r *monitoringRepo) ExistsByPetAndDate(ctx context.Context, petID string, date time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.existsLocked(petID, date, ""), nil
}

func (r *monitoringRepo) ListBetween(ctx context.Context, petID string, start, end time.Time) ([]monitorings.Monitoring, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start, end = monitorings.DateOnly(start), monitorings.DateOnly(end)
	out := make([]monitorings.Monitoring, 0)
	for _, m := range r.byID {
		if m.PetID != petID {
			continue
		}
		if m.Date.Before(start) || m.Date.After(end) {
			continue
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

// existsLocked asume el lock tomado. exceptID excluye la propia fila en updates.
func (r *monitoringRepo) existsLocked(petID string, date time.Time, exceptID string) bool {
	date = monitorings.DateOnly(date)
	for _, m := range r.byID {
		if m.ID == exceptID || m.PetID != petID {
			continue
		}
		if monitorings.DateOnly(m.Date).Equal(date) {
			return true
		}
	}
	return false
}
