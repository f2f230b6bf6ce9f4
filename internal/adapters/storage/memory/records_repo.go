package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/records"
	"pet-care-journal/internal/platform/pagination"
)

type recordRepo struct {
	mu   sync.RWMutex
	byID map[string]records.Record
}

func NewRecordRepo() records.Repository {
	return &recordRepo{
		byID: make(map[string]records.Record),
	}
}

func (r *recordRepo) Create(ctx context.Context, rec records.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("record already exists")
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *recordRepo) Update(ctx context.Context, rec records.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rec.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

// GetByID devuelve también los borrados; el validador decide.
func (r *recordRepo) GetByID(ctx context.Context, id string) (records.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return records.Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *recordRepo) ListPublic(ctx context.Context, page pagination.Request) ([]records.Record, int, error) {
	return r.list(func(rec records.Record) bool { return rec.IsPublic }, page)
}

func (r *recordRepo) ListByPet(ctx context.Context, petID string, page pagination.Request) ([]records.Record, int, error) {
	return r.list(func(rec records.Record) bool { return rec.PetID == petID }, page)
}

func (r *recordRepo) list(keep func(records.Record) bool, page pagination.Request) ([]records.Record, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]records.Record, 0)
	for _, rec := range r.byID {
		if rec.Deleted() || !keep(rec) {
			continue
		}
		out = append(out, rec)
	}

	// Más nuevo primero
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	items, total := pagination.Slice(out, page)
	return items, total, nil
}
