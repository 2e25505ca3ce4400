package budget

import "travelplanner/internal/domain/apperr"

var (
	ErrNotFound          = apperr.NotFound("No such budget found.")
	ErrCategoryNotFound  = apperr.NotFound("No such category found.")
	ErrForbidden         = apperr.Forbidden("Budget belongs to another user.")
	ErrInvalidDate       = apperr.Validation("Invalid date format")
	ErrInvalidCategoryID = apperr.Validation("Invalid category id")
)
