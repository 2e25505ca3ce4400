package budget

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) op(id, method, path, summary string) huma.Operation {
	return huma.Operation{
		OperationID: id,
		Method:      method,
		Path:        path,
		Summary:     summary,
		Tags:        []string{"budgets"},
		Security:    bearer,
		Middlewares: h.mws,
	}
}

func (h *Handler) createOp() huma.Operation {
	op := h.op("budget-create", http.MethodPost, "/user/budget", "Создать бюджет")
	op.DefaultStatus = http.StatusCreated
	return op
}

func (h *Handler) listOp() huma.Operation {
	return h.op("budget-list", http.MethodGet, "/user/budget", "Бюджеты пользователя")
}

func (h *Handler) getOp() huma.Operation {
	return h.op("budget-get", http.MethodGet, "/user/budget/{id}", "Бюджет с категориями")
}

func (h *Handler) updateOp() huma.Operation {
	op := h.op("budget-update", http.MethodPut, "/user/budget/{id}", "Обновить бюджет")
	op.Description = "Категории сверяются с текущими: с id обновляются, без id создаются, отсутствующие удаляются."
	return op
}

func (h *Handler) deleteOp() huma.Operation {
	op := h.op("budget-delete", http.MethodDelete, "/user/budget/{id}", "Удалить бюджет")
	op.DefaultStatus = http.StatusNoContent
	return op
}

func (h *Handler) addCategoryOp() huma.Operation {
	op := h.op("budget-category-add", http.MethodPost, "/user/budget/{id}/category", "Добавить категорию")
	op.DefaultStatus = http.StatusCreated
	return op
}

func (h *Handler) updateCategoryOp() huma.Operation {
	return h.op("budget-category-update", http.MethodPut,
		"/user/budget/{budgetId}/category/{categoryId}", "Обновить категорию")
}

func (h *Handler) deleteCategoryOp() huma.Operation {
	op := h.op("budget-category-delete", http.MethodDelete,
		"/user/budget/{budgetId}/category/{categoryId}", "Удалить категорию")
	op.DefaultStatus = http.StatusNoContent
	return op
}
