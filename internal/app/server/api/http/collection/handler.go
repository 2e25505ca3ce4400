// Package collection serves flat per-account lists (checklist, journal,
// packing list): create, list, update and delete, all scoped to the caller.
package collection

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/app/server/api/http/middleware/auth"
)

// Servicer is satisfied by checklist, journal and packing services.
type Servicer[In, Out any] interface {
	Create(ctx context.Context, userID uuid.UUID, in In) (Out, error)
	List(ctx context.Context, userID uuid.UUID) ([]Out, error)
	Update(ctx context.Context, userID, id uuid.UUID, in In) (Out, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Resource struct {
	Name     string // префикс operationId
	Tag      string
	Path     string
	NotFound error
}

type Handler[In, Out any] struct {
	res     Resource
	service Servicer[In, Out]
	log     *slog.Logger
	mws     huma.Middlewares
}

func NewHandler[In, Out any](res Resource, service Servicer[In, Out], log *slog.Logger, mws huma.Middlewares) *Handler[In, Out] {
	return &Handler[In, Out]{
		res:     res,
		service: service,
		log:     log.With("resource", res.Name),
		mws:     mws,
	}
}

func (h *Handler[In, Out]) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler[In, Out]) create(ctx context.Context, input *createInput[In]) (*itemOutput[Out], error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	item, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &itemOutput[Out]{Body: item}, nil
}

func (h *Handler[In, Out]) list(ctx context.Context, _ *struct{}) (*listOutput[Out], error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	if items == nil {
		items = []Out{}
	}
	return &listOutput[Out]{Body: items}, nil
}

func (h *Handler[In, Out]) update(ctx context.Context, input *updateInput[In]) (*itemOutput[Out], error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, h.res.NotFound)
	if err != nil {
		return nil, err
	}

	item, err := h.service.Update(ctx, userID, id, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &itemOutput[Out]{Body: item}, nil
}

func (h *Handler[In, Out]) delete(ctx context.Context, input *idPath) (*struct{}, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, h.res.NotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, httperr.From(h.log, err)
	}
	return nil, nil
}
