package pets

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-journal/internal/domain/users"
	"pet-care-journal/internal/platform/apperr"
)

type testRepo struct {
	byID map[string]Pet
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return apperr.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, apperr.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByGroup(ctx context.Context, groupID string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if p.GroupID == groupID {
			out = append(out, p)
		}
	}
	return out, nil
}

// testValidator: members[groupID] = usernames del grupo.
type testValidator struct {
	repo    *testRepo
	members map[string][]string
}

func (v testValidator) RequireGroupMember(ctx context.Context, groupID, username string) (users.User, error) {
	list, ok := v.members[groupID]
	if !ok {
		return users.User{}, apperr.NotFound("group not found")
	}
	for _, m := range list {
		if m == username {
			return users.User{ID: "id-" + username, Username: username}, nil
		}
	}
	return users.User{}, apperr.Forbidden("not a member")
}

func (v testValidator) PetWithUsername(ctx context.Context, petID, username string) (Pet, users.User, error) {
	p, err := v.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, users.User{}, apperr.NotFound("pet not found")
	}
	u, err := v.RequireGroupMember(ctx, p.GroupID, username)
	if err != nil {
		return Pet{}, users.User{}, err
	}
	return p, u, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	v := testValidator{repo: repo, members: map[string][]string{"g-1": {"mina"}, "g-2": {"jun"}}}
	svc := NewService(repo, v)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func TestService_Create_DefaultsSexToUnknown(t *testing.T) {
	svc, _ := newTestService()

	p, err := svc.Create(context.Background(), "g-1", "mina", CreateInput{Name: " Coco ", Species: "dog"})
	require.NoError(t, err)

	assert.Equal(t, "Coco", p.Name)
	assert.Equal(t, SexUnknown, p.Sex)
	assert.Equal(t, "g-1", p.GroupID)
}

func TestService_Create_RejectsNonMemberAndBadSpecies(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "g-2", "mina", CreateInput{Name: "Coco", Species: "dog"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(ctx, "g-1", "mina", CreateInput{Name: "Coco", Species: "fish"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = svc.Create(ctx, "g-1", "mina", CreateInput{Name: "  ", Species: "cat"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestService_UpdateProfile_PatchSemantics(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	bd := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	p, err := svc.Create(ctx, "g-1", "mina", CreateInput{Name: "Coco", Species: "cat", Breed: "persian", Birthday: &bd})
	require.NoError(t, err)

	name := "Nabi"
	updated, err := svc.UpdateProfile(ctx, p.ID, "mina", UpdateProfileInput{
		Name:     &name,
		Birthday: BirthdayPatch{Present: true, Value: nil},
	})
	require.NoError(t, err)

	assert.Equal(t, "Nabi", updated.Name)
	assert.Equal(t, "persian", updated.Breed)
	assert.Nil(t, updated.Birthday)
	assert.Equal(t, updated, repo.byID[p.ID])
}

func TestService_Get_ForbiddenForOtherGroup(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, "g-1", "mina", CreateInput{Name: "Coco", Species: "dog"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, p.ID, "jun")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Get(ctx, "missing", "mina")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
