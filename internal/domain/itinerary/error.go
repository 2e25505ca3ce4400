package itinerary

import "travelplanner/internal/domain/apperr"

var (
	ErrNotFound          = apperr.NotFound("Itinerary not found")
	ErrForbidden         = apperr.Forbidden("Itinerary belongs to another user.")
	ErrInvalidDate       = apperr.Validation("Invalid date format")
	ErrDateRange         = apperr.Validation("End date must not be before start date")
	ErrInvalidActivityID = apperr.Validation("Invalid activity id")
)
