// Package httperr turns domain errors into {"message": "..."} responses.
package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"travelplanner/internal/domain/apperr"
)

const InternalMessage = "Something went wrong."

// StatusError - тело любой ошибки API.
type StatusError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string { return e.Message }

func (e *StatusError) GetStatus() int { return e.Status }

func New(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

var install sync.Once

// Install replaces huma's problem+json errors with StatusError. Request
// validation failures (422 in huma) are reported as 400.
func Install() {
	install.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			if status == http.StatusUnprocessableEntity {
				status = http.StatusBadRequest
			}
			if status < 500 && len(errs) > 0 {
				details := make([]string, 0, len(errs))
				for _, e := range errs {
					if e != nil {
						details = append(details, e.Error())
					}
				}
				if len(details) > 0 {
					msg = msg + ": " + strings.Join(details, "; ")
				}
			}
			return New(status, msg)
		}
	})
}

// From maps err to a response error. Unexpected errors are logged and
// answered with a generic message.
func From(log *slog.Logger, err error) error {
	if err == nil {
		return nil
	}

	var se *StatusError
	if errors.As(err, &se) {
		return se
	}

	kind := apperr.KindOf(err)
	if kind == apperr.KindUnexpected {
		log.Error("request failed", "error", err)
		return New(http.StatusInternalServerError, InternalMessage)
	}
	if kind == apperr.KindUpstream {
		log.Warn("upstream failure", "error", err)
	}
	return New(kind.HTTPStatus(), apperr.MessageOf(err))
}

// PathID parses an id taken from the URL. A malformed id cannot name any
// record, so it is answered with notFound.
func PathID(raw string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, New(apperr.KindOf(notFound).HTTPStatus(), apperr.MessageOf(notFound))
	}
	return id, nil
}

// Write answers directly from an interceptor, before any handler ran.
func Write(ctx huma.Context, status int, message string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(StatusError{Message: message})
}
