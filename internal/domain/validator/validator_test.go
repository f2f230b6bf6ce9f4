package validator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mem "pet-care-journal/internal/adapters/storage/memory"
	"pet-care-journal/internal/domain/groups"
	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/records"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

type fixture struct {
	v     *Validator
	repos Repos
}

// newFixture: mina es owner de g-1 con la mascota p-1; jun existe pero no es miembro.
func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()

	repos := Repos{
		Users:       mem.NewUserRepo(),
		Groups:      mem.NewGroupRepo(),
		Pets:        mem.NewPetRepo(),
		Schedules:   mem.NewScheduleRepo(),
		Records:     mem.NewRecordRepo(),
		Monitorings: mem.NewMonitoringRepo(),
	}

	require.NoError(t, repos.Users.Create(ctx, users.User{ID: "u-1", Username: "mina"}))
	require.NoError(t, repos.Users.Create(ctx, users.User{ID: "u-2", Username: "jun"}))
	require.NoError(t, repos.Groups.CreateWithOwner(ctx,
		groups.Group{ID: "g-1", Name: "Family", OwnerUserID: "u-1"},
		groups.UserGroup{ID: "m-1", GroupID: "g-1", UserID: "u-1", IsOwner: true},
	))
	require.NoError(t, repos.Pets.Create(ctx, pets.Pet{ID: "p-1", GroupID: "g-1", Name: "Coco"}))

	return fixture{v: New(repos), repos: repos}
}

func TestValidator_PetWithUsername(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, u, err := f.v.PetWithUsername(ctx, "p-1", "mina")
	require.NoError(t, err)
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "u-1", u.ID)

	_, _, err = f.v.PetWithUsername(ctx, "p-1", "jun")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, _, err = f.v.PetWithUsername(ctx, "p-9", "mina")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "pet not found", apperr.MessageOf(err))

	_, _, err = f.v.PetWithUsername(ctx, "p-1", "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestValidator_GroupWithMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g, u, m, err := f.v.GroupWithMember(ctx, "g-1", "mina")
	require.NoError(t, err)
	assert.Equal(t, "g-1", g.ID)
	assert.Equal(t, "mina", u.Username)
	assert.True(t, m.IsOwner)

	_, err = f.v.RequireGroupMember(ctx, "g-1", "jun")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = f.v.RequireGroupMember(ctx, "g-9", "mina")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestValidator_RecordByID_DeletedIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, f.repos.Records.Create(ctx, records.Record{ID: "r-1", PetID: "p-1", UserID: "u-1"}))
	require.NoError(t, f.repos.Records.Create(ctx, records.Record{ID: "r-2", PetID: "p-1", UserID: "u-1", DeletedAt: &now}))

	_, err := f.v.RecordByID(ctx, "r-1")
	assert.NoError(t, err)

	_, err = f.v.RecordByID(ctx, "r-2")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.v.RecordByID(ctx, "r-9")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestValidator_MonitoringAndScheduleNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.v.MonitoringByID(ctx, "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Equal(t, "monitoring not found", apperr.MessageOf(err))

	_, err = f.v.ScheduleByID(ctx, "x")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
