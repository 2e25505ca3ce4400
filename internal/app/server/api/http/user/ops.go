package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-register",
		Method:        http.MethodPost,
		Path:          "/register",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Авторизация пользователя",
		Tags:        []string{"users"},
		Middlewares: h.public,
	}
}

func (h *Handler) aboutMeOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-about-me",
		Method:      http.MethodGet,
		Path:        "/aboutMe",
		Summary:     "Профиль текущего пользователя",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "user-update",
		Method:      http.MethodPut,
		Path:        "/user/update",
		Summary:     "Обновить профиль",
		Description: "Пустые поля сохраняют текущее значение. Пароль перехешируется, только если передан.",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "user-delete",
		Method:        http.MethodDelete,
		Path:          "/user",
		Summary:       "Удалить аккаунт вместе со всеми данными",
		Tags:          []string{"users"},
		Security:      bearer,
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.protected,
	}
}
