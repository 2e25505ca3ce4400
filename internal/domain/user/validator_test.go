package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordValidator_ValidateEmail(t *testing.T) {
	validator := NewPasswordValidator()

	tests := []struct {
		name        string
		email       string
		wantErr     bool
		expectedErr string
	}{
		{name: "valid email", email: "jane@example.com"},
		{name: "valid with plus", email: "jane+trips@example.com"},
		{name: "empty", email: "", wantErr: true, expectedErr: "email is required"},
		{name: "no at sign", email: "jane.example.com", wantErr: true, expectedErr: "email is not valid"},
		{name: "display name form", email: "Jane <jane@example.com>", wantErr: true, expectedErr: "email is not valid"},
		{name: "too long", email: strings.Repeat("a", 250) + "@x.io", wantErr: true, expectedErr: "at most"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidatePassword(t *testing.T) {
	validator := NewPasswordValidator()

	tests := []struct {
		name        string
		password    string
		wantErr     bool
		expectedErr string
	}{
		{name: "valid password", password: "passw0rd"},
		{name: "too short", password: "pa1", wantErr: true, expectedErr: "at least 8 characters"},
		{name: "too long", password: strings.Repeat("a1", 40), wantErr: true, expectedErr: "at most 72 bytes"},
		{name: "no digit", password: "password", wantErr: true, expectedErr: "at least one digit"},
		{name: "no letter", password: "12345678", wantErr: true, expectedErr: "at least one letter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePassword(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPasswordValidator_ValidateUpdate(t *testing.T) {
	validator := NewPasswordValidator()

	assert.NoError(t, validator.ValidateUpdate(UpdateRequest{}))
	assert.NoError(t, validator.ValidateUpdate(UpdateRequest{FirstName: "Jane"}))
	assert.Error(t, validator.ValidateUpdate(UpdateRequest{Email: "nope"}))
	assert.Error(t, validator.ValidateUpdate(UpdateRequest{Password: "short"}))
	assert.Error(t, validator.ValidateUpdate(UpdateRequest{LastName: strings.Repeat("x", MaxNameLen+1)}))
}
