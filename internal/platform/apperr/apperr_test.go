package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByCode(t *testing.T) {
	err := NotFound("pet not found")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))

	wrapped := fmt.Errorf("loading pet: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, CodeNotFound, CodeOf(wrapped))
	assert.Equal(t, "pet not found", MessageOf(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("x"), http.StatusNotFound},
		{Forbidden("x"), http.StatusForbidden},
		{InvalidRequest("x"), http.StatusBadRequest},
		{Duplicate("x"), http.StatusConflict},
		{Unauthorized("x"), http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HTTPStatus(c.err), c.err.Error())
	}
}

func TestMessageOf_HidesUntypedErrors(t *testing.T) {
	assert.Equal(t, "internal error", MessageOf(errors.New("pq: connection refused")))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("db down")
	err := Wrap(CodeNotFound, "user not found", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "db down")
}
