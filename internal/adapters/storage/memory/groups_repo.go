package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-journal/internal/domain/groups"
	"pet-care-journal/internal/platform/apperr"
)

type groupRepo struct {
	mu      sync.RWMutex
	byID    map[string]groups.Group
	members map[string]groups.UserGroup // key: groupID + "/" + userID
}

func NewGroupRepo() groups.Repository {
	return &groupRepo{
		byID:    make(map[string]groups.Group),
		members: make(map[string]groups.UserGroup),
	}
}

func memberKey(groupID, userID string) string { return groupID + "/" + userID }

func (r *groupRepo) CreateWithOwner(ctx context.Context, g groups.Group, owner groups.UserGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(g.ID) == "" {
		return errors.New("group id required")
	}
	if _, exists := r.byID[g.ID]; exists {
		return errors.New("group already exists")
	}
	r.byID[g.ID] = g
	r.members[memberKey(owner.GroupID, owner.UserID)] = owner
	return nil
}

func (r *groupRepo) GetByID(ctx context.Context, id string) (groups.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return groups.Group{}, ErrNotFound
	}
	return g, nil
}

func (r *groupRepo) AddMember(ctx context.Context, m groups.UserGroup) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[m.GroupID]; !ok {
		return ErrNotFound
	}
	key := memberKey(m.GroupID, m.UserID)
	if _, exists := r.members[key]; exists {
		return apperr.Duplicate("already a member")
	}
	r.members[key] = m
	return nil
}

func (r *groupRepo) GetMembership(ctx context.Context, groupID, userID string) (groups.UserGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[memberKey(groupID, userID)]
	if !ok {
		return groups.UserGroup{}, ErrNotFound
	}
	return m, nil
}

func (r *groupRepo) ListMembers(ctx context.Context, groupID string) ([]groups.UserGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]groups.UserGroup, 0)
	for _, m := range r.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *groupRepo) ListByUser(ctx context.Context, userID string) ([]groups.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]groups.Group, 0)
	for _, m := range r.members {
		if m.UserID != userID {
			continue
		}
		if g, ok := r.byID[m.GroupID]; ok {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
