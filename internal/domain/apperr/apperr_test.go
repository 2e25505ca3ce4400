package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind   Kind
		status int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindAuth, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusBadRequest},
		{KindUpstream, http.StatusInternalServerError},
		{KindUnexpected, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.status, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf_WrappedChain(t *testing.T) {
	sentinel := NotFound("No such budget found.")
	err := fmt.Errorf("get budget: %w", sentinel)

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "No such budget found.", MessageOf(err))
	assert.True(t, errors.Is(err, sentinel))
}

func TestKindOf_Unclassified(t *testing.T) {
	err := errors.New("connection reset")

	assert.Equal(t, KindUnexpected, KindOf(err))
	assert.Empty(t, MessageOf(err))
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	err := Wrap(KindUpstream, "Error fetching weather data", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error fetching weather data: dial tcp: timeout", err.Error())
	assert.Equal(t, KindUpstream, KindOf(err))
}
