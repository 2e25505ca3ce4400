package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/apperr"
)

// DefaultTTL время жизни токена сессии
const DefaultTTL = 24 * time.Hour

var (
	ErrInvalidToken = apperr.Auth("Invalid token. Please login again.")
	ErrTokenExpired = apperr.Auth("Token expired. Please login again.")
)

type Servicer interface {
	Issue(accountID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}

// Claims is the signed payload. Only the account id is carried, the account
// itself is resolved again on every request.
type Claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
	log    *slog.Logger
}

func NewService(secret []byte, ttl time.Duration, clock clockwork.Clock, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		secret: secret,
		ttl:    ttl,
		clock:  clock,
		log:    log.With("component", "session_service"),
	}
}

// Issue подписывает токен с id аккаунта и фиксированным сроком жизни.
func (s *Service) Issue(accountID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		ID: accountID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature and expiry against the service clock and returns the
// embedded account id.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, ErrTokenExpired
		}
		s.log.Debug("token rejected", "error", err)
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	id, err := uuid.Parse(claims.ID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
