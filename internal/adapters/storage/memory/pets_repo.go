package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/platform/apperr"
)

var (
	ErrNotFound = apperr.ErrNotFound
)

type petRepo struct {
	mu sync.RWMutex

	byID map[string]pets.Pet
	// groupID -> ids, en orden de alta
	byGroup map[string][]string
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:    make(map[string]pets.Pet),
		byGroup: make(map[string][]string),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if strings.TrimSpace(p.GroupID) == "" {
		return errors.New("pet group id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return apperr.Duplicate("pet " + p.ID + " already exists")
	}
	r.byID[p.ID] = p
	r.byGroup[p.GroupID] = append(r.byGroup[p.GroupID], p.ID)
	return nil
}

// Update no mueve la mascota de grupo.
func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, exists := r.byID[p.ID]
	if !exists {
		return ErrNotFound
	}
	p.GroupID = cur.GroupID
	r.byID[p.ID] = p
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *petRepo) ListByGroup(ctx context.Context, groupID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byGroup[groupID]
	out := make([]pets.Pet, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}

	// created_at asc; empates en orden de alta
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
