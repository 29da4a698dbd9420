package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Required("name")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("lookup: %w", NotFound("city not found"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.True(t, Is(PermissionDenied("nope"), KindPermissionDenied))
	assert.False(t, Is(nil, KindInternal))
}

func TestRequired(t *testing.T) {
	err := Required("hygia")
	assert.Equal(t, "hygia is required", err.Error())
	assert.Equal(t, "hygia", FieldOf(err))
	assert.Equal(t, "", FieldOf(errors.New("other")))
}

func TestInternal_WrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause, "failed to list countries")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to list countries: connection refused", err.Error())
	assert.Equal(t, "internal", err.Kind.String())
}

func TestStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Required("name"), http.StatusBadRequest},
		{NotFound("patient not found"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusConflict},
		{PermissionDenied("denied"), http.StatusUnauthorized},
		{Unauthorized("invalid token"), http.StatusUnauthorized},
		{errors.New("driver: bad connection"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Status(tc.err), tc.err.Error())
	}
}

func TestPublicMessage_HidesInternalDetails(t *testing.T) {
	assert.Equal(t, "unknown error", PublicMessage(Internal(errors.New("dial tcp"), "failed to list")))
	assert.Equal(t, "unknown error", PublicMessage(errors.New("raw")))
	assert.Equal(t, "name is required", PublicMessage(Required("name")))
}
