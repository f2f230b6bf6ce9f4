package monitorings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/logger"
)

type Validator interface {
	PetWithUsername(ctx context.Context, petID, username string) (pets.Pet, users.User, error)
	MonitoringByID(ctx context.Context, id string) (Monitoring, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       logger.Logger
	now       func() time.Time
}

func NewService(repo Repository, v Validator, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo:      repo,
		validator: v,
		log:       log.With(map[string]any{"module": "monitorings"}),
		now:       time.Now,
	}
}

type Input struct {
	Date       time.Time
	Weight     float64
	Vomit      bool
	AmPill     bool
	PmPill     bool
	Urination  int
	Defecation int
	WalkCnt    int
	Notes      string

	CustomSymptom     *bool
	CustomSymptomName string
	CustomInt         *int
	CustomIntName     string
}

func (in Input) validate() error {
	if in.Date.IsZero() {
		return apperr.InvalidRequest("date is required")
	}
	if in.Weight < 0 || in.Urination < 0 || in.Defecation < 0 || in.WalkCnt < 0 {
		return apperr.InvalidRequest("counts and weight cannot be negative")
	}
	return nil
}

// List devuelve las entradas de [start, end] en orden de fecha.
func (s *Service) List(ctx context.Context, petID, start, end, username string) ([]Monitoring, error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return nil, err
	}
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBetween(ctx, pet.ID, from, to)
}

func (s *Service) Report(ctx context.Context, petID, start, end, username string) (Report, error) {
	_, rep, err := s.listAndReport(ctx, petID, start, end, username)
	return rep, err
}

func (s *Service) listAndReport(ctx context.Context, petID, start, end, username string) ([]Monitoring, Report, error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return nil, Report{}, err
	}
	from, to, err := ParseRange(start, end)
	if err != nil {
		return nil, Report{}, err
	}

	items, err := s.repo.ListBetween(ctx, pet.ID, from, to)
	if err != nil {
		return nil, Report{}, err
	}

	rep := Aggregate(items)
	rep.Start, rep.End = from, to
	return items, rep, nil
}

func (s *Service) Create(ctx context.Context, petID, username string, in Input) (Monitoring, error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return Monitoring{}, err
	}
	if err := in.validate(); err != nil {
		return Monitoring{}, err
	}

	date := DateOnly(in.Date)
	exists, err := s.repo.ExistsByPetAndDate(ctx, pet.ID, date)
	if err != nil {
		return Monitoring{}, err
	}
	if exists {
		return Monitoring{}, apperr.InvalidRequest("monitoring already exists for " + date.Format(BodyDateLayout))
	}

	now := s.now()
	m := Monitoring{
		ID:        uuid.NewString(),
		PetID:     pet.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	apply(&m, in)

	if err := s.repo.Create(ctx, m); err != nil {
		return Monitoring{}, err
	}

	s.log.Info("monitoring created", map[string]any{
		"pet_id":        pet.ID,
		"monitoring_id": m.ID,
		"date":          m.Date.Format(BodyDateLayout),
	})
	return m, nil
}

// Modify reemplaza todos los campos. Cambiar a una fecha ya usada se rechaza.
func (s *Service) Modify(ctx context.Context, petID, monitoringID, username string, in Input) (Monitoring, error) {
	m, err := s.monitoringOfPet(ctx, petID, monitoringID, username)
	if err != nil {
		return Monitoring{}, err
	}
	if err := in.validate(); err != nil {
		return Monitoring{}, err
	}

	date := DateOnly(in.Date)
	if !date.Equal(m.Date) {
		exists, err := s.repo.ExistsByPetAndDate(ctx, m.PetID, date)
		if err != nil {
			return Monitoring{}, err
		}
		if exists {
			return Monitoring{}, apperr.InvalidRequest("monitoring already exists for " + date.Format(BodyDateLayout))
		}
	}

	apply(&m, in)
	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return Monitoring{}, err
	}
	return m, nil
}

// Delete es físico (a diferencia de records).
func (s *Service) Delete(ctx context.Context, petID, monitoringID, username string) (DeleteResult, error) {
	m, err := s.monitoringOfPet(ctx, petID, monitoringID, username)
	if err != nil {
		return DeleteResult{}, err
	}
	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return DeleteResult{}, err
	}

	s.log.Info("monitoring deleted", map[string]any{
		"pet_id":        m.PetID,
		"monitoring_id": m.ID,
	})
	return DeleteResult{ID: m.ID, Message: "monitoring deleted"}, nil
}

func (s *Service) Get(ctx context.Context, petID, monitoringID, username string) (Monitoring, error) {
	return s.monitoringOfPet(ctx, petID, monitoringID, username)
}

func (s *Service) monitoringOfPet(ctx context.Context, petID, monitoringID, username string) (Monitoring, error) {
	pet, _, err := s.validator.PetWithUsername(ctx, petID, username)
	if err != nil {
		return Monitoring{}, err
	}
	m, err := s.validator.MonitoringByID(ctx, monitoringID)
	if err != nil {
		return Monitoring{}, err
	}
	if m.PetID != pet.ID {
		return Monitoring{}, apperr.InvalidRequest("monitoring does not belong to pet")
	}
	return m, nil
}

func apply(m *Monitoring, in Input) {
	m.Date = DateOnly(in.Date)
	m.Weight = in.Weight
	m.Vomit = in.Vomit
	m.AmPill = in.AmPill
	m.PmPill = in.PmPill
	m.Urination = in.Urination
	m.Defecation = in.Defecation
	m.WalkCnt = in.WalkCnt
	m.Notes = in.Notes
	m.CustomSymptom = in.CustomSymptom
	m.CustomSymptomName = in.CustomSymptomName
	m.CustomInt = in.CustomInt
	m.CustomIntName = in.CustomIntName
}
