package schedules

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

type Validator interface {
	PetWithUsername(ctx context.Context, petID, username string) (pets.Pet, users.User, error)
	ScheduleByID(ctx context.Context, id string) (Schedule, error)
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
	AssigneeID  string
	Category    string
	Title       string
	Body        string
	Place       string
	DueDate     time.Time
	IsCompleted bool
}

func (in Input) validate() error {
	if !Category(strings.TrimSpace(in.Category)).Valid() {
		return apperr.InvalidRequest("invalid category")
	}
	if strings.TrimSpace(in.Title) == "" {
		return apperr.InvalidRequest("title is required")
	}
	if in.DueDate.IsZero() {
		return apperr.InvalidRequest("due_date is required")
	}
	return nil
}

// DeleteResult es la respuesta de Delete.
type DeleteResult struct {
	ID      string
	Message string
}

func (s *Service) Create(ctx context.Context, petID, username string, in Input) (Schedule, error) {
	pet, u, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return Schedule{}, err
	}
	if err := in.validate(); err != nil {
		return Schedule{}, err
	}

	now := s.now()
	sc := Schedule{
		ID:     uuid.NewString(),
		PetID:  pet.ID,
		UserID: u.ID,

		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&sc, in)

	if err := s.repo.Create(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

func (s *Service) Modify(ctx context.Context, petID, scheduleID, username string, in Input) (Schedule, error) {
	sc, err := s.scheduleOfPet(ctx, petID, scheduleID, username)
	if err != nil {
		return Schedule{}, err
	}
	if err := in.validate(); err != nil {
		return Schedule{}, err
	}

	apply(&sc, in)
	sc.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, sc); err != nil {
		return Schedule{}, err
	}
	return sc, nil
}

func (s *Service) Delete(ctx context.Context, petID, scheduleID, username string) (DeleteResult, error) {
	sc, err := s.scheduleOfPet(ctx, petID, scheduleID, username)
	if err != nil {
		return DeleteResult{}, err
	}
	if err := s.repo.Delete(ctx, sc.ID); err != nil {
		return DeleteResult{}, err
	}
	return DeleteResult{ID: sc.ID, Message: "schedule deleted"}, nil
}

func (s *Service) Get(ctx context.Context, petID, scheduleID, username string) (Schedule, error) {
	return s.scheduleOfPet(ctx, petID, scheduleID, username)
}

// List ordena por category DESC salvo que se pida otro campo permitido.
func (s *Service) List(ctx context.Context, petID, username string, page pagination.Request) (pagination.Page[Schedule], error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return pagination.Page[Schedule]{}, err
	}

	if page.Sort != "" && !SortFields[page.Sort] {
		return pagination.Page[Schedule]{}, apperr.InvalidRequest("invalid sort field: " + page.Sort)
	}
	page = page.Normalize("category", true)

	items, total, err := s.repo.ListByPet(ctx, pet.ID, page)
	if err != nil {
		return pagination.Page[Schedule]{}, err
	}
	return pagination.NewPage(items, page, total), nil
}

func (s *Service) scheduleOfPet(ctx context.Context, petID, scheduleID, username string) (Schedule, error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return Schedule{}, err
	}
	sc, err := s.validator.ScheduleByID(ctx, scheduleID)
	if err != nil {
		return Schedule{}, err
	}
	if sc.PetID != pet.ID {
		return Schedule{}, apperr.InvalidRequest("schedule does not belong to pet")
	}
	return sc, nil
}

func apply(sc *Schedule, in Input) {
	sc.AssigneeID = strings.TrimSpace(in.AssigneeID)
	sc.Category = Category(strings.TrimSpace(in.Category))
	sc.Title = strings.TrimSpace(in.Title)
	sc.Body = in.Body
	sc.Place = strings.TrimSpace(in.Place)
	sc.DueDate = in.DueDate
	sc.IsCompleted = in.IsCompleted
}
