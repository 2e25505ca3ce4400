package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/domain/apperr"
	"travelplanner/internal/domain/session"
	"travelplanner/internal/domain/user"
)

const (
	MsgNotAuthorized = "Not Authorized"
	MsgBadHeader     = "Invalid authorization header"
)

// AccountFinder resolves the account a verified token names.
type AccountFinder interface {
	Get(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Auth struct {
	session  session.Servicer
	accounts AccountFinder
	log      *slog.Logger
}

func New(session session.Servicer, accounts AccountFinder, log *slog.Logger) *Auth {
	return &Auth{
		session:  session,
		accounts: accounts,
		log:      log.With("component", "auth_middleware"),
	}
}

type contextKey string

const (
	accountKey contextKey = "account"
	trackerKey contextKey = "account_tracker"
)

type tracker struct {
	id uuid.UUID
	ok bool
}

// Track returns ctx with a slot that Middleware fills with the resolved
// account id. Interceptors running before auth read it after next.
func Track(ctx context.Context) (context.Context, func() (uuid.UUID, bool)) {
	t := &tracker{}
	return context.WithValue(ctx, trackerKey, t), func() (uuid.UUID, bool) { return t.id, t.ok }
}

// Middleware resolves "Authorization: Bearer <token>" into an account.
// Requests without the header pass through anonymously; RequireAccount
// decides whether the route needs one.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		if header == "" {
			next(ctx)
			return
		}

		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			a.log.Debug("malformed authorization header", "path", ctx.URL().Path)
			httperr.Write(ctx, http.StatusUnauthorized, MsgBadHeader)
			return
		}

		id, err := a.session.Verify(strings.TrimSpace(token))
		if err != nil {
			a.log.Debug("token rejected", "path", ctx.URL().Path, "error", err)
			httperr.Write(ctx, http.StatusUnauthorized, apperr.MessageOf(err))
			return
		}

		account, err := a.accounts.Get(ctx.Context(), id)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				// токен валиден, но аккаунт уже удален
				httperr.Write(ctx, http.StatusUnauthorized, session.ErrInvalidToken.Message)
				return
			}
			a.log.Error("failed to resolve account", "user_id", id, "error", err)
			httperr.Write(ctx, http.StatusInternalServerError, httperr.InternalMessage)
			return
		}

		if t, ok := ctx.Context().Value(trackerKey).(*tracker); ok {
			t.id, t.ok = account.ID, true
		}
		next(huma.WithContext(ctx, WithAccount(ctx.Context(), account)))
	}
}

// RequireAccount rejects anonymous requests. It must run after Middleware.
func (a *Auth) RequireAccount() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if _, ok := AccountFrom(ctx.Context()); !ok {
			httperr.Write(ctx, http.StatusUnauthorized, MsgNotAuthorized)
			return
		}
		next(ctx)
	}
}

func WithAccount(ctx context.Context, u user.User) context.Context {
	return context.WithValue(ctx, accountKey, u)
}

func AccountFrom(ctx context.Context) (user.User, bool) {
	u, ok := ctx.Value(accountKey).(user.User)
	return u, ok
}

// AccountID is a shortcut for handlers behind RequireAccount.
func AccountID(ctx context.Context) (uuid.UUID, error) {
	u, ok := AccountFrom(ctx)
	if !ok {
		return uuid.Nil, httperr.New(http.StatusUnauthorized, MsgNotAuthorized)
	}
	return u.ID, nil
}
