package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, id uuid.UUID) (User, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
	cost      int
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log.With("component", "user_service"),
		cost:      bcrypt.DefaultCost,
	}
}

// Register creates an account. A taken email is rejected before anything is
// written; the unique index covers the race between the check and the insert.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.ValidateRegister(req); err != nil {
		s.log.Debug("validation failed", "email", req.Email, "error", err)
		return User{}, err
	}

	_, err := s.repo.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		s.log.Info("registration rejected, email already in use", "email", req.Email)
		return User{}, ErrEmailTaken
	case !errors.Is(err, ErrNotFound):
		return User{}, fmt.Errorf("find user by email: %w", err)
	}

	hash, err := HashPassword(req.Password, s.cost)
	if err != nil {
		return User{}, err
	}

	u := User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, &u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return User{}, ErrEmailTaken
		}
		return User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("user registered", "user_id", u.ID)
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.log.Debug("login for unknown email", "email", email)
			return User{}, ErrInvalidCredentials
		}
		return User{}, fmt.Errorf("find user by email: %w", err)
	}

	if u.PasswordHash == "" {
		return User{}, ErrNoPassword
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		s.log.Debug("password mismatch", "user_id", u.ID)
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateRequest) (User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := s.validator.ValidateUpdate(req); err != nil {
		return User{}, err
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return User{}, err
	}

	if req.Email != "" {
		u.Email = req.Email
	}
	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Password != "" {
		hash, err := HashPassword(req.Password, s.cost)
		if err != nil {
			return User{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, &u); err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return User{}, ErrEmailTaken
		case errors.Is(err, ErrNotFound):
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("user updated", "user_id", u.ID)
	return u, nil
}

// Delete removes the account; owned budgets, itineraries and lists go with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	s.log.Info("user deleted", "user_id", id)
	return nil
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password with a stored bcrypt hash.
func VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
