package records

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-journal/internal/domain/pets"
	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
	"pet-care-journal/internal/platform/pagination"
)

// -------------------------
// Fakes
// -------------------------

type testRepo struct {
	byID map[string]Record
}

func (r *testRepo) Create(ctx context.Context, rec Record) error {
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) Update(ctx context.Context, rec Record) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[rec.ID] = rec
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Record, error) {
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, apperr.ErrNotFound
	}
	return rec, nil
}

func (r *testRepo) list(keep func(Record) bool, page pagination.Request) ([]Record, int, error) {
	out := make([]Record, 0)
	for _, rec := range r.byID {
		if rec.Deleted() || !keep(rec) {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	items, total := pagination.Slice(out, page)
	return items, total, nil
}

func (r *testRepo) ListPublic(ctx context.Context, page pagination.Request) ([]Record, int, error) {
	return r.list(func(rec Record) bool { return rec.IsPublic }, page)
}

func (r *testRepo) ListByPet(ctx context.Context, petID string, page pagination.Request) ([]Record, int, error) {
	return r.list(func(rec Record) bool { return rec.PetID == petID }, page)
}

// testValidator: pet "p-1" del grupo de mina y jun; "hana" no es miembro.
type testValidator struct {
	repo *testRepo
}

var testUsers = map[string]users.User{
	"mina": {ID: "u-1", Username: "mina"},
	"jun":  {ID: "u-2", Username: "jun"},
	"hana": {ID: "u-3", Username: "hana"},
}

func (v testValidator) UserByUsername(ctx context.Context, username string) (users.User, error) {
	u, ok := testUsers[username]
	if !ok {
		return users.User{}, apperr.NotFound("user not found")
	}
	return u, nil
}

func (v testValidator) PetByID(ctx context.Context, petID string) (pets.Pet, error) {
	if petID != "p-1" && petID != "p-2" {
		return pets.Pet{}, apperr.NotFound("pet not found")
	}
	return pets.Pet{ID: petID, GroupID: "g-1"}, nil
}

func (v testValidator) PetWithUsername(ctx context.Context, petID, username string) (pets.Pet, users.User, error) {
	p, err := v.PetByID(ctx, petID)
	if err != nil {
		return pets.Pet{}, users.User{}, err
	}
	u, err := v.UserByUsername(ctx, username)
	if err != nil {
		return pets.Pet{}, users.User{}, err
	}
	if username == "hana" {
		return pets.Pet{}, users.User{}, apperr.Forbidden("not a member")
	}
	return p, u, nil
}

func (v testValidator) RecordByID(ctx context.Context, id string) (Record, error) {
	rec, err := v.repo.GetByID(ctx, id)
	if err != nil || rec.Deleted() {
		return Record{}, apperr.NotFound("record not found")
	}
	return rec, nil
}

func newTestService() (*Service, *testRepo) {
	repo := &testRepo{byID: map[string]Record{}}
	svc := NewService(repo, testValidator{repo: repo})

	clock := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc, repo
}

// -------------------------
// Tests
// -------------------------

func TestService_ModifyDelete_OnlyAuthor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, "p-1", "mina", Input{Title: "walk", Body: "park"})
	require.NoError(t, err)
	assert.Equal(t, msgCreated, res.Message)

	// jun es miembro del grupo pero no es el autor
	_, err = svc.Modify(ctx, "p-1", res.ID, "jun", Input{Title: "changed"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Delete(ctx, "p-1", res.ID, "jun")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	mod, err := svc.Modify(ctx, "p-1", res.ID, "mina", Input{Title: "walk 2", IsPublic: true})
	require.NoError(t, err)
	assert.Equal(t, WorkResult{ID: res.ID, Message: msgModified}, mod)
}

func TestService_Delete_IsSoft(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	res, err := svc.Create(ctx, "p-1", "mina", Input{Title: "walk"})
	require.NoError(t, err)

	del, err := svc.Delete(ctx, "p-1", res.ID, "mina")
	require.NoError(t, err)
	assert.Equal(t, msgDeleted, del.Message)

	// sigue en el repo, marcado
	stored := repo.byID[res.ID]
	require.NotNil(t, stored.DeletedAt)

	_, err = svc.Get(ctx, "p-1", res.ID, "mina")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Delete(ctx, "p-1", res.ID, "mina")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestService_Get_Visibility(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	private, err := svc.Create(ctx, "p-1", "mina", Input{Title: "private"})
	require.NoError(t, err)
	public, err := svc.Create(ctx, "p-1", "mina", Input{Title: "public", IsPublic: true})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "p-1", public.ID, "hana")
	assert.NoError(t, err)

	_, err = svc.Get(ctx, "p-1", private.ID, "hana")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Get(ctx, "p-1", private.ID, "jun")
	assert.NoError(t, err)

	// registro de otra mascota
	_, err = svc.Get(ctx, "p-2", private.ID, "mina")
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestService_Feed_OnlyPublicNewestFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "p-1", "mina", Input{Title: "first", IsPublic: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "p-1", "mina", Input{Title: "hidden"})
	require.NoError(t, err)
	third, err := svc.Create(ctx, "p-1", "jun", Input{Title: "third", IsPublic: true})
	require.NoError(t, err)
	_, err = svc.Delete(ctx, "p-1", third.ID, "jun")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "p-1", "jun", Input{Title: "fourth", IsPublic: true})
	require.NoError(t, err)

	page, err := svc.Feed(ctx, pagination.Request{})
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "fourth", page.Items[0].Title)
	assert.Equal(t, "first", page.Items[1].Title)
	assert.Equal(t, pagination.DefaultSize, page.Size)
}

func TestService_Create_RequiresMembershipAndTitle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "p-1", "hana", Input{Title: "x"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, "p-1", "mina", Input{Title: " "})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = svc.Create(ctx, "missing", "mina", Input{Title: "x"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
