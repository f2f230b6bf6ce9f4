package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pet-care-journal/internal/platform/apperr"
)

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, apperr.ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, apperr.ErrNotFound
}

func (r *testRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.GetByUsername(ctx, username)
	return err == nil, nil
}

type testIssuer struct{}

func (testIssuer) Issue(userID, username, role string) (string, error) {
	return "token-" + username + "-" + role, nil
}

func newTestService() *Service {
	s := NewService(newTestRepo(), testIssuer{})
	s.cost = bcrypt.MinCost
	return s
}

func TestService_Join_HashesPassword(t *testing.T) {
	s := newTestService()

	u, err := s.Join(context.Background(), JoinInput{Username: " mina ", Password: "pw1234", Email: "mina@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "mina", u.Username)
	assert.Equal(t, RoleUser, u.Role)
	assert.NotEqual(t, "pw1234", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw1234")))
}

func TestService_Join_Duplicated(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.Join(ctx, JoinInput{Username: "mina", Password: "pw"})
	require.NoError(t, err)

	_, err = s.Join(ctx, JoinInput{Username: "mina", Password: "other"})
	assert.ErrorIs(t, err, apperr.ErrDuplicate)
}

func TestService_Join_InvalidInput(t *testing.T) {
	s := newTestService()

	_, err := s.Join(context.Background(), JoinInput{Username: "", Password: "pw"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)

	_, err = s.Join(context.Background(), JoinInput{Username: "mina", Password: "pw", Email: "not-an-email"})
	assert.ErrorIs(t, err, apperr.ErrInvalidRequest)
}

func TestService_Login(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	_, err := s.Join(ctx, JoinInput{Username: "mina", Password: "pw"})
	require.NoError(t, err)

	token, err := s.Login(ctx, "mina", "pw")
	require.NoError(t, err)
	assert.Equal(t, "token-mina-ROLE_USER", token)

	_, err = s.Login(ctx, "mina", "wrong")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)

	_, err = s.Login(ctx, "nobody", "pw")
	assert.ErrorIs(t, err, apperr.ErrUnauthorized)
}

func TestService_Me_NotFound(t *testing.T) {
	_, err := newTestService().Me(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
