package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/domain/session"
	"travelplanner/internal/domain/user"
)

type Handler struct {
	service   user.Servicer
	session   session.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

// NewHandler takes two chains: public for /register and /login, protected
// (ending with RequireAccount) for everything else.
func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		session:   session,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.aboutMeOp(), h.aboutMe)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return h.issue(u)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return h.issue(u)
}

func (h *Handler) issue(u user.User) (*authOutput, error) {
	token, err := h.session.Issue(u.ID)
	if err != nil {
		return nil, httperr.From(h.log, fmt.Errorf("issue token: %w", err))
	}
	return &authOutput{Body: AuthResponse{Token: token, User: u}}, nil
}

func (h *Handler) aboutMe(ctx context.Context, _ *struct{}) (*aboutMeOutput, error) {
	u, ok := auth.AccountFrom(ctx)
	if !ok {
		return nil, httperr.New(http.StatusUnauthorized, auth.MsgNotAuthorized)
	}
	return &aboutMeOutput{Body: u.Profile()}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	id, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	u, err := h.service.Update(ctx, id, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &updateOutput{Body: UpdateResponse{Message: "User updated successfully", User: u.Profile()}}, nil
}

func (h *Handler) delete(ctx context.Context, _ *struct{}) (*struct{}, error) {
	id, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return nil, httperr.From(h.log, err)
	}
	return nil, nil
}
