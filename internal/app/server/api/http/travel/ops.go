package travel

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) weatherOp() huma.Operation {
	return huma.Operation{
		OperationID: "weather",
		Method:      http.MethodGet,
		Path:        "/weather",
		Summary:     "Прогноз погоды",
		Tags:        []string{"travel"},
		Middlewares: h.mws,
		Responses: map[string]*huma.Response{
			"200": {
				Description: "Документ Visual Crossing timeline",
				Content:     map[string]*huma.MediaType{"application/json": {}},
			},
		},
	}
}

func (h *Handler) flightsOp() huma.Operation {
	return huma.Operation{
		OperationID: "flights-search",
		Method:      http.MethodGet,
		Path:        "/flights/search",
		Summary:     "Поиск авиабилетов",
		Description: "fromQuery и toQuery сначала сопоставляются с пунктами назначения провайдера.",
		Tags:        []string{"travel"},
		Middlewares: h.mws,
	}
}

func (h *Handler) destinationOp() huma.Operation {
	return huma.Operation{
		OperationID: "destination-generate",
		Method:      http.MethodGet,
		Path:        "/destination/generate",
		Summary:     "Случайная страна для поездки",
		Tags:        []string{"travel"},
		Middlewares: h.mws,
	}
}
