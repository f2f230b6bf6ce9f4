package pets

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

// Validator es lo que pets necesita del validador central.
// Se declara acá para evitar ciclos de imports (validator importa pets).
type Validator interface {
	RequireGroupMember(ctx context.Context, groupID, username string) (users.User, error)
	PetWithUsername(ctx context.Context, petID, username string) (Pet, users.User, error)
}

type Service struct {
	repo      Repository
	validator Validator
	now       func() time.Time
}

func NewService(repo Repository, v Validator) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		now:       time.Now,
	}
}

type CreateInput struct {
	Name     string
	Species  string
	Breed    string
	Sex      string
	Birthday *time.Time
	Notes    string
}

func (s *Service) Create(ctx context.Context, groupID, username string, in CreateInput) (Pet, error) {
	if _, err := s.validator.RequireGroupMember(ctx, groupID, username); err != nil {
		return Pet{}, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Pet{}, apperr.InvalidRequest("name is required")
	}
	species := Species(strings.TrimSpace(in.Species))
	if !species.Valid() {
		return Pet{}, apperr.InvalidRequest("species must be dog, cat or other")
	}
	sex := Sex(strings.TrimSpace(in.Sex))
	if sex == "" {
		sex = SexUnknown
	}
	if !sex.Valid() {
		return Pet{}, apperr.InvalidRequest("invalid sex")
	}

	now := s.now()
	p := Pet{
		ID:       uuid.NewString(),
		GroupID:  groupID,
		Name:     name,
		Species:  species,
		Breed:    strings.TrimSpace(in.Breed),
		Sex:      sex,
		Birthday: in.Birthday,
		Notes:    strings.TrimSpace(in.Notes),

		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, petID, username string) (Pet, error) {
	p, _, err := s.validator.PetWithUsername(ctx, petID, username)
	return p, err
}

// ListByGroup no valida membresía; lo llama groups después de validar.
func (s *Service) ListByGroup(ctx context.Context, groupID string) ([]Pet, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

// BirthdayPatch distingue "no enviado" de "null" (limpiar).
type BirthdayPatch struct {
	Present bool
	Value   *time.Time
}

// UpdateProfileInput usa punteros para PATCH real: nil = no tocar.
type UpdateProfileInput struct {
	Name     *string
	Species  *string
	Breed    *string
	Sex      *string
	Birthday BirthdayPatch
	Notes    *string
}

func (s *Service) UpdateProfile(ctx context.Context, petID, username string, in UpdateProfileInput) (Pet, error) {
	p, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, apperr.InvalidRequest("name cannot be empty")
		}
		p.Name = name
	}
	if in.Species != nil {
		species := Species(strings.TrimSpace(*in.Species))
		if !species.Valid() {
			return Pet{}, apperr.InvalidRequest("species must be dog, cat or other")
		}
		p.Species = species
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Sex != nil {
		sex := Sex(strings.TrimSpace(*in.Sex))
		if !sex.Valid() {
			return Pet{}, apperr.InvalidRequest("invalid sex")
		}
		p.Sex = sex
	}
	if in.Birthday.Present {
		p.Birthday = in.Birthday.Value
	}
	if in.Notes != nil {
		p.Notes = strings.TrimSpace(*in.Notes)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}
