package user

import "travelplanner/internal/domain/apperr"

var (
	ErrNotFound           = apperr.NotFound("user not found")
	ErrInvalidCredentials = apperr.Auth("Invalid email or password")
	ErrEmailTaken         = apperr.Conflict("Email already in use.")
	ErrNoPassword         = apperr.New(apperr.KindUnexpected, "Password not found for user")
)
