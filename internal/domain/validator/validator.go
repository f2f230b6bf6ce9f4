// Package validator centraliza las preguntas "¿existe?" y "¿este usuario puede?".
// Todos los servicios pasan por acá antes de mutar; cada uno declara la interfaz
// angosta que necesita para no importar este paquete.
package validator

import (
	"context"
	"errors"
	"strings"

	"pet-care-journal/internal/domain/groups"
	"pet-care-journal/internal/domain/monitorings"
	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/records"
	"pet-care-journal/internal/domain/schedules"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

type Repos struct {
	Users       users.Repository
	Groups      groups.Repository
	Pets        pets.Repository
	Schedules   schedules.Repository
	Records     records.Repository
	Monitorings monitorings.Repository
}

type Validator struct {
	repos Repos
}

var (
	_ pets.Validator        = (*Validator)(nil)
	_ groups.Validator      = (*Validator)(nil)
	_ schedules.Validator   = (*Validator)(nil)
	_ records.Validator     = (*Validator)(nil)
	_ monitorings.Validator = (*Validator)(nil)
)

func New(repos Repos) *Validator {
	return &Validator{repos: repos}
}

func (v *Validator) UserByUsername(ctx context.Context, username string) (users.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return users.User{}, apperr.NotFound("user not found")
	}
	u, err := v.repos.Users.GetByUsername(ctx, username)
	if err != nil {
		return users.User{}, notFound(err, username+" not found")
	}
	return u, nil
}

func (v *Validator) PetByID(ctx context.Context, petID string) (pets.Pet, error) {
	p, err := v.repos.Pets.GetByID(ctx, petID)
	if err != nil {
		return pets.Pet{}, notFound(err, "pet not found")
	}
	return p, nil
}

// PetWithUsername exige que el usuario sea miembro del grupo dueño de la mascota.
func (v *Validator) PetWithUsername(ctx context.Context, petID, username string) (pets.Pet, users.User, error) {
	u, err := v.UserByUsername(ctx, username)
	if err != nil {
		return pets.Pet{}, users.User{}, err
	}
	p, err := v.PetByID(ctx, petID)
	if err != nil {
		return pets.Pet{}, users.User{}, err
	}
	if _, err := v.membership(ctx, p.GroupID, u.ID); err != nil {
		return pets.Pet{}, users.User{}, err
	}
	return p, u, nil
}

func (v *Validator) GroupByID(ctx context.Context, groupID string) (groups.Group, error) {
	g, err := v.repos.Groups.GetByID(ctx, groupID)
	if err != nil {
		return groups.Group{}, notFound(err, "group not found")
	}
	return g, nil
}

// GroupWithMember devuelve grupo, usuario y su membresía. No miembro => INVALID_PERMISSION.
func (v *Validator) GroupWithMember(ctx context.Context, groupID, username string) (groups.Group, users.User, groups.UserGroup, error) {
	u, err := v.UserByUsername(ctx, username)
	if err != nil {
		return groups.Group{}, users.User{}, groups.UserGroup{}, err
	}
	g, err := v.GroupByID(ctx, groupID)
	if err != nil {
		return groups.Group{}, users.User{}, groups.UserGroup{}, err
	}
	m, err := v.membership(ctx, g.ID, u.ID)
	if err != nil {
		return groups.Group{}, users.User{}, groups.UserGroup{}, err
	}
	return g, u, m, nil
}

func (v *Validator) RequireGroupMember(ctx context.Context, groupID, username string) (users.User, error) {
	_, u, _, err := v.GroupWithMember(ctx, groupID, username)
	return u, err
}

// RecordByID trata los registros borrados como inexistentes.
func (v *Validator) RecordByID(ctx context.Context, id string) (records.Record, error) {
	r, err := v.repos.Records.GetByID(ctx, id)
	if err != nil {
		return records.Record{}, notFound(err, "record not found")
	}
	if r.Deleted() {
		return records.Record{}, apperr.NotFound("record not found")
	}
	return r, nil
}

func (v *Validator) MonitoringByID(ctx context.Context, id string) (monitorings.Monitoring, error) {
	m, err := v.repos.Monitorings.GetByID(ctx, id)
	if err != nil {
		return monitorings.Monitoring{}, notFound(err, "monitoring not found")
	}
	return m, nil
}

func (v *Validator) ScheduleByID(ctx context.Context, id string) (schedules.Schedule, error) {
	s, err := v.repos.Schedules.GetByID(ctx, id)
	if err != nil {
		return schedules.Schedule{}, notFound(err, "schedule not found")
	}
	return s, nil
}

func (v *Validator) membership(ctx context.Context, groupID, userID string) (groups.UserGroup, error) {
	m, err := v.repos.Groups.GetMembership(ctx, groupID, userID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return groups.UserGroup{}, apperr.Forbidden("user is not a member of the group")
		}
		return groups.UserGroup{}, err
	}
	return m, nil
}

// notFound reemplaza el NOT_FOUND genérico del repo por uno con mensaje propio.
func notFound(err error, msg string) error {
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.Wrap(apperr.CodeNotFound, msg, err)
	}
	return err
}
