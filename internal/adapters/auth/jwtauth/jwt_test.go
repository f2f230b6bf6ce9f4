package jwtauth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueAndVerify(t *testing.T) {
	s := New("secret", "pet-care-journal", time.Hour)

	token, err := s.Issue("u-1", "mina", "ROLE_USER")
	require.NoError(t, err)

	c, err := s.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", c.UserID)
	assert.Equal(t, "mina", c.Username)
	assert.Equal(t, "ROLE_USER", c.Role)
}

func TestService_Verify_Expired(t *testing.T) {
	s := New("secret", "pet-care-journal", time.Minute)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.Issue("u-1", "mina", "ROLE_USER")
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(context.Background(), token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestService_Verify_WrongSecretOrIssuer(t *testing.T) {
	token, err := New("other", "pet-care-journal", time.Hour).Issue("u-1", "mina", "ROLE_USER")
	require.NoError(t, err)

	_, err = New("secret", "pet-care-journal", time.Hour).Verify(context.Background(), token)
	assert.Error(t, err)

	token, err = New("secret", "someone-else", time.Hour).Issue("u-1", "mina", "ROLE_USER")
	require.NoError(t, err)

	_, err = New("secret", "pet-care-journal", time.Hour).Verify(context.Background(), token)
	assert.Error(t, err)
}

func TestService_Verify_Empty(t *testing.T) {
	_, err := New("secret", "x", time.Hour).Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
