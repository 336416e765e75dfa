package http

import (
	"encoding/json"
	"net/http"

	"stayhaven-backend/internal/apperr"
	"stayhaven-backend/internal/logger"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response body", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperr.FromError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
	}
	writeJSON(w, appErr.HTTPStatus, errorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}
