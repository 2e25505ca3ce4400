package travel

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"travelplanner/internal/app/server/api/http/httperr"
	"travelplanner/internal/domain/travel"
)

type Handler struct {
	service travel.Servicer
	log     *slog.Logger
	mws     huma.Middlewares
}

func NewHandler(service travel.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mws:     mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.weatherOp(), h.weather)
	huma.Register(api, h.flightsOp(), h.flights)
	huma.Register(api, h.destinationOp(), h.destination)
}

func (h *Handler) weather(ctx context.Context, input *weatherInput) (*weatherOutput, error) {
	forecast, err := h.service.Weather(ctx, input.Location)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &weatherOutput{ContentType: "application/json", Body: forecast}, nil
}

func (h *Handler) flights(ctx context.Context, input *flightsInput) (*flightsOutput, error) {
	flights, err := h.service.SearchFlights(ctx, input.search())
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	if flights == nil {
		flights = []travel.Flight{}
	}
	return &flightsOutput{Body: FlightsResponse{Flights: flights}}, nil
}

func (h *Handler) destination(ctx context.Context, _ *struct{}) (*destinationOutput, error) {
	d, err := h.service.GenerateDestination(ctx)
	if err != nil {
		return nil, httperr.From(h.log, err)
	}
	return &destinationOutput{Body: d}, nil
}
