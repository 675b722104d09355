// Package response writes JSON bodies and maps domain errors to HTTP codes.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/you-humble/storefront/internal/model"
	apiv1 "github.com/you-humble/storefront/internal/transport/http/api/v1"
	"github.com/you-humble/storefront/platform/logger"
)

func JSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "write response", logger.ErrorF(err))
	}
}

func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusOf(err)
	body := apiv1.Error{Code: status, Message: err.Error()}

	var reqErr *model.RequestError
	if errors.As(err, &reqErr) && len(reqErr.Payload) > 0 {
		if json.Valid(reqErr.Payload) {
			body.Payload = json.RawMessage(reqErr.Payload)
		} else {
			body.Payload = string(reqErr.Payload)
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.ErrorF(err),
		)
	}

	JSON(w, r, status, body)
}

// StatusOf maps an error to its HTTP status. Not-found is checked before
// request failure so a backend 404 stays a 404.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrSessionNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrOrderNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrStaleResponse):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrRequestFailed):
		return http.StatusBadGateway // 502
	default:
		return http.StatusInternalServerError // 500
	}
}
