package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"travelplanner/internal/domain/apperr"
)

const (
	MaxEmailLen    = 254
	MaxNameLen     = 100
	MinPasswordLen = 8
	MaxPasswordLen = 72 // предел bcrypt
)

// Validator - интерфейс для валидации пользовательских данных
type Validator interface {
	ValidateRegister(req RegisterRequest) error
	ValidateUpdate(req UpdateRequest) error
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}

type PasswordValidator struct {
	requireLetter bool
	requireDigit  bool
}

// NewPasswordValidator создает новый валидатор
func NewPasswordValidator() *PasswordValidator {
	return &PasswordValidator{
		requireLetter: true,
		requireDigit:  true,
	}
}

func (v *PasswordValidator) ValidateRegister(req RegisterRequest) error {
	if err := v.ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := validateNames(req.FirstName, req.LastName); err != nil {
		return err
	}
	return v.ValidatePassword(req.Password)
}

func (v *PasswordValidator) ValidateUpdate(req UpdateRequest) error {
	if req.Email != "" {
		if err := v.ValidateEmail(req.Email); err != nil {
			return err
		}
	}
	if err := validateNames(req.FirstName, req.LastName); err != nil {
		return err
	}
	if req.Password != "" {
		return v.ValidatePassword(req.Password)
	}
	return nil
}

func (v *PasswordValidator) ValidateEmail(email string) error {
	if email == "" {
		return apperr.Validation("email is required")
	}
	if len(email) > MaxEmailLen {
		return apperr.Validation(fmt.Sprintf("email must be at most %d characters", MaxEmailLen))
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperr.Validation("email is not valid")
	}
	return nil
}

func (v *PasswordValidator) ValidatePassword(password string) error {
	if len(password) < MinPasswordLen {
		return apperr.Validation(fmt.Sprintf("password must be at least %d characters", MinPasswordLen))
	}
	if len(password) > MaxPasswordLen {
		return apperr.Validation(fmt.Sprintf("password must be at most %d bytes", MaxPasswordLen))
	}

	hasLetter := strings.IndexFunc(password, unicode.IsLetter) >= 0
	hasDigit := strings.IndexFunc(password, unicode.IsDigit) >= 0

	if v.requireLetter && !hasLetter {
		return apperr.Validation("password must contain at least one letter")
	}
	if v.requireDigit && !hasDigit {
		return apperr.Validation("password must contain at least one digit")
	}
	return nil
}

func validateNames(names ...string) error {
	for _, n := range names {
		if len(n) > MaxNameLen {
			return apperr.Validation(fmt.Sprintf("name must be at most %d characters", MaxNameLen))
		}
	}
	return nil
}
