package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/schedules"
	"pet-care-journal/internal/platform/pagination"
)

type scheduleRepo struct {
	mu   sync.RWMutex
	byID map[string]schedules.Schedule
}

func NewScheduleRepo() schedules.Repository {
	return &scheduleRepo{
		byID: make(map[string]schedules.Schedule),
	}
}

func (r *scheduleRepo) Create(ctx context.Context, s schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("schedule id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("schedule already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *scheduleRepo) Update(ctx context.Context, s schedules.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; !exists {
		return ErrNotFound
	}
	r.byID[s.ID] = s
	return nil
}

func (r *scheduleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *scheduleRepo) GetByID(ctx context.Context, id string) (schedules.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return schedules.Schedule{}, ErrNotFound
	}
	return s, nil
}

func (r *scheduleRepo) ListByPet(ctx context.Context, petID string, page pagination.Request) ([]schedules.Schedule, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedules.Schedule, 0)
	for _, s := range r.byID {
		if s.PetID == petID {
			out = append(out, s)
		}
	}

	less := scheduleLess(page.Sort)
	sort.SliceStable(out, func(i, j int) bool {
		if page.Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})

	items, total := pagination.Slice(out, page)
	return items, total, nil
}

// scheduleLess desempata por created_at para que el orden sea estable entre páginas.
func scheduleLess(field string) func(a, b schedules.Schedule) bool {
	return func(a, b schedules.Schedule) bool {
		switch field {
		case "due_date":
			if !a.DueDate.Equal(b.DueDate) {
				return a.DueDate.Before(b.DueDate)
			}
		case "title":
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		case "category":
			if a.Category != b.Category {
				return a.Category < b.Category
			}
		}
		return a.CreatedAt.Before(b.CreatedAt)
	}
}
