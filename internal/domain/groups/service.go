package groups

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

// Validator es el subconjunto del validador central que usa groups.
type Validator interface {
	UserByUsername(ctx context.Context, username string) (users.User, error)
	GroupWithMember(ctx context.Context, groupID, username string) (Group, users.User, UserGroup, error)
}

// UserLookup resuelve los datos de cada miembro.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (users.User, error)
}

// PetLister lo implementa pets.Service.
type PetLister interface {
	ListByGroup(ctx context.Context, groupID string) ([]pets.Pet, error)
}

type Service struct {
	repo      Repository
	validator Validator
	users     UserLookup
	pets      PetLister
	now       func() time.Time
}

func NewService(repo Repository, v Validator, usersLookup UserLookup, petLister PetLister) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		users:     usersLookup,
		pets:      petLister,
		now:       time.Now,
	}
}

type CreateInput struct {
	Name        string
	RoleInGroup string
}

// Create crea el grupo y deja al creador como owner.
func (s *Service) Create(ctx context.Context, username string, in CreateInput) (Group, error) {
	u, err := s.validator.UserByUsername(ctx, username)
	if err != nil {
		return Group{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Group{}, apperr.InvalidRequest("group name is required")
	}

	now := s.now()
	g := Group{
		ID:          uuid.NewString(),
		Name:        name,
		OwnerUserID: u.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	owner := UserGroup{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		GroupID:     g.ID,
		RoleInGroup: strings.TrimSpace(in.RoleInGroup),
		IsOwner:     true,
		CreatedAt:   now,
	}

	if err := s.repo.CreateWithOwner(ctx, g, owner); err != nil {
		return Group{}, err
	}
	return g, nil
}

func (s *Service) Members(ctx context.Context, groupID, username string) ([]Member, error) {
	if _, _, _, err := s.validator.GroupWithMember(ctx, groupID, username); err != nil {
		return nil, err
	}

	rows, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	out := make([]Member, 0, len(rows))
	for _, m := range rows {
		u, err := s.users.GetByID(ctx, m.UserID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				// membresía huérfana: no rompe el listado
				continue
			}
			return nil, err
		}
		out = append(out, toMember(m, u))
	}
	return out, nil
}

func (s *Service) Pets(ctx context.Context, groupID, username string) ([]pets.Pet, error) {
	if _, _, _, err := s.validator.GroupWithMember(ctx, groupID, username); err != nil {
		return nil, err
	}
	return s.pets.ListByGroup(ctx, groupID)
}

type AddMemberInput struct {
	Username    string
	RoleInGroup string
}

// AddMember sólo lo puede hacer el owner del grupo.
func (s *Service) AddMember(ctx context.Context, groupID, username string, in AddMemberInput) (Member, error) {
	_, _, membership, err := s.validator.GroupWithMember(ctx, groupID, username)
	if err != nil {
		return Member{}, err
	}
	if !membership.IsOwner {
		return Member{}, apperr.Forbidden("only the group owner can add members")
	}

	target, err := s.validator.UserByUsername(ctx, in.Username)
	if err != nil {
		return Member{}, err
	}

	_, err = s.repo.GetMembership(ctx, groupID, target.ID)
	switch {
	case err == nil:
		return Member{}, apperr.Duplicate(target.Username + " is already a member")
	case !errors.Is(err, apperr.ErrNotFound):
		return Member{}, err
	}

	m := UserGroup{
		ID:          uuid.NewString(),
		UserID:      target.ID,
		GroupID:     groupID,
		RoleInGroup: strings.TrimSpace(in.RoleInGroup),
		IsOwner:     false,
		CreatedAt:   s.now(),
	}
	if err := s.repo.AddMember(ctx, m); err != nil {
		return Member{}, err
	}
	return toMember(m, target), nil
}

func (s *Service) ListMine(ctx context.Context, username string) ([]Group, error) {
	u, err := s.validator.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(ctx, u.ID)
}

func toMember(m UserGroup, u users.User) Member {
	return Member{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		RoleInGroup: m.RoleInGroup,
		IsOwner:     m.IsOwner,
		JoinedAt:    m.CreatedAt,
	}
}
