package records

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/pagination"
)

const (
	msgCreated  = "record created"
	msgModified = "record modified"
	msgDeleted  = "record deleted"
)

type Validator interface {
	UserByUsername(ctx context.Context, username string) (users.User, error)
	PetByID(ctx context.Context, petID string) (pets.Pet, error)
	PetWithUsername(ctx context.Context, petID, username string) (pets.Pet, users.User, error)
	RecordByID(ctx context.Context, id string) (Record, error)
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

type Input struct {
	Title    string
	Body     string
	IsPublic bool
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.InvalidRequest("title is required")
	}
	return nil
}

// Get: los públicos los lee cualquier usuario autenticado; los privados,
// el autor o un miembro del grupo de la mascota.
func (s *Service) Get(ctx context.Context, petID, recordID, username string) (Record, error) {
	u, err := s.validator.UserByUsername(ctx, username)
	if err != nil {
		return Record{}, err
	}
	rec, err := s.recordOfPet(ctx, petID, recordID)
	if err != nil {
		return Record{}, err
	}

	if rec.IsPublic || rec.UserID == u.ID {
		return rec, nil
	}
	if _, _, err := s.validator.PetWithUsername(ctx, petID, username); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Feed(ctx context.Context, page pagination.Request) (pagination.Page[Record], error) {
	page = page.Normalize("created_at", true)

	items, total, err := s.repo.ListPublic(ctx, page)
	if err != nil {
		return pagination.Page[Record]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *Service) ListByPet(ctx context.Context, petID, username string, page pagination.Request) (pagination.Page[Record], error) {
	if _, _, err := s.validator.PetWithUsername(ctx, petID, username); err != nil {
		return pagination.Page[Record]{}, err
	}

	page = page.Normalize("created_at", true)
	items, total, err := s.repo.ListByPet(ctx, petID, page)
	if err != nil {
		return pagination.Page[Record]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *Service) Create(ctx context.Context, petID, username string, in Input) (WorkResult, error) {
	pet, u, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return WorkResult{}, err
	}
	if err := in.validate(); err != nil {
		return WorkResult{}, err
	}

	now := s.now()
	rec := Record{
		ID:        uuid.NewString(),
		PetID:     pet.ID,
		UserID:    u.ID,
		Title:     strings.TrimSpace(in.Title),
		Body:      in.Body,
		IsPublic:  in.IsPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return WorkResult{}, err
	}
	return WorkResult{ID: rec.ID, Message: msgCreated}, nil
}

func (s *Service) Modify(ctx context.Context, petID, recordID, username string, in Input) (WorkResult, error) {
	rec, err := s.authorRecord(ctx, petID, recordID, username)
	if err != nil {
		return WorkResult{}, err
	}
	if err := in.validate(); err != nil {
		return WorkResult{}, err
	}

	rec.Title = strings.TrimSpace(in.Title)
	rec.Body = in.Body
	rec.IsPublic = in.IsPublic
	rec.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, rec); err != nil {
		return WorkResult{}, err
	}
	return WorkResult{ID: rec.ID, Message: msgModified}, nil
}

// Delete es lógico: marca DeletedAt y el registro deja de aparecer.
func (s *Service) Delete(ctx context.Context, petID, recordID, username string) (WorkResult, error) {
	rec, err := s.authorRecord(ctx, petID, recordID, username)
	if err != nil {
		return WorkResult{}, err
	}

	now := s.now()
	rec.DeletedAt = &now
	rec.UpdatedAt = now

	if err := s.repo.Update(ctx, rec); err != nil {
		return WorkResult{}, err
	}
	return WorkResult{ID: rec.ID, Message: msgDeleted}, nil
}

// authorRecord exige que el usuario sea el autor. Ser miembro del grupo no alcanza.
func (s *Service) authorRecord(ctx context.Context, petID, recordID, username string) (Record, error) {
	u, err := s.validator.UserByUsername(ctx, username)
	if err != nil {
		return Record{}, err
	}
	rec, err := s.recordOfPet(ctx, petID, recordID)
	if err != nil {
		return Record{}, err
	}
	if rec.UserID != u.ID {
		return Record{}, apperr.Forbidden("only the author can change this record")
	}
	return rec, nil
}

func (s *Service) recordOfPet(ctx context.Context, petID, recordID string) (Record, error) {
	pet, err := s.validator.PetByID(ctx, petID)
	if err != nil {
		return Record{}, err
	}
	rec, err := s.validator.RecordByID(ctx, recordID)
	if err != nil {
		return Record{}, err
	}
	if rec.PetID != pet.ID {
		return Record{}, apperr.InvalidRequest("record does not belong to pet")
	}
	return rec, nil
}
