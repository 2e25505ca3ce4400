package collection

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler[In, Out]) op(action, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: h.res.Name + "-" + action,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{h.res.Tag},
		Security:    bearer,
		Middlewares: h.mws,
	}
}

func (h *Handler[In, Out]) createOp() huma.Operation {
	op := h.op("create", http.MethodPost, h.res.Path, "Добавить запись")
	op.DefaultStatus = http.StatusCreated
	return op
}

func (h *Handler[In, Out]) listOp() huma.Operation {
	return h.op("list", http.MethodGet, h.res.Path, "Записи пользователя")
}

func (h *Handler[In, Out]) updateOp() huma.Operation {
	op := h.op("update", http.MethodPut, h.res.Path+"/{id}", "Обновить запись")
	op.Description = "Чужая или несуществующая запись дает 404."
	return op
}

func (h *Handler[In, Out]) deleteOp() huma.Operation {
	op := h.op("delete", http.MethodDelete, h.res.Path+"/{id}", "Удалить запись")
	op.DefaultStatus = http.StatusNoContent
	return op
}
