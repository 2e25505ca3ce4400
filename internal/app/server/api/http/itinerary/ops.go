package itinerary

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "itinerary-create",
		Method:        http.MethodPost,
		Path:          "/user/itinerary",
		Summary:       "Создать маршрут",
		Tags:          []string{"itineraries"},
		Security:      bearer,
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.mws,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "itinerary-list",
		Method:      http.MethodGet,
		Path:        "/user/itinerary",
		Summary:     "Маршруты пользователя",
		Tags:        []string{"itineraries"},
		Security:    bearer,
		Middlewares: h.mws,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "itinerary-get",
		Method:      http.MethodGet,
		Path:        "/user/itinerary/{id}",
		Summary:     "Маршрут с активностями",
		Tags:        []string{"itineraries"},
		Security:    bearer,
		Middlewares: h.mws,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "itinerary-update",
		Method:      http.MethodPut,
		Path:        "/user/itinerary/{id}",
		Summary:     "Обновить маршрут",
		Description: "Список activities заменяет текущий: с id обновляются, без id создаются, остальные удаляются.",
		Tags:        []string{"itineraries"},
		Security:    bearer,
		Middlewares: h.mws,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "itinerary-delete",
		Method:        http.MethodDelete,
		Path:          "/user/itinerary/{id}",
		Summary:       "Удалить маршрут",
		Tags:          []string{"itineraries"},
		Security:      bearer,
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.mws,
	}
}
