package itinerary

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/app/server/api/http/middleware/auth"
	"travelplanner/internal/domain/itinerary"
)

type Handler struct {
	service itinerary.Servicer
	log     *slog.Logger
	mws     huma.Middlewares
}

func NewHandler(service itinerary.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mws:     mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itineraryOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	it, err := h.service.Create(ctx, userID, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &itineraryOutput{Body: it}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}

	items, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) get(ctx context.Context, input *idPath) (*itineraryOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, itinerary.ErrNotFound)
	if err != nil {
		return nil, err
	}

	it, err := h.service.Get(ctx, userID, id)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &itineraryOutput{Body: it}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itineraryOutput, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, itinerary.ErrNotFound)
	if err != nil {
		return nil, err
	}

	it, err := h.service.Update(ctx, userID, id, input.Body)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &itineraryOutput{Body: it}, nil
}

func (h *Handler) delete(ctx context.Context, input *idPath) (*struct{}, error) {
	userID, err := auth.AccountID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := httperr.PathID(input.ID, itinerary.ErrNotFound)
	if err != nil {
		return nil, err
	}

	if err := h.service.Delete(ctx, userID, id); err != nil {
		return nil, httperr.From(h.log, err)
	}
	return nil, nil
}
