// Package respond maps domain outcomes onto HTTP responses.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
)

// StatusClientClosedRequest is written when the client went away before the
// response was ready.
const StatusClientClosedRequest = 499

type validationResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Error writes the status that matches err. Unknown errors are logged and
// reported as 500. A cancelled request context is not a server fault.
func Error(w http.ResponseWriter, err error) {
	var verr *form.ValidationError

	switch {
	case errors.As(err, &verr):
		JSON(w, http.StatusUnprocessableEntity, validationResponse{Error: verr.Error(), Fields: verr.Fields})
	case errors.Is(err, collection.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, form.ErrUnknownField):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, form.ErrSaving), errors.Is(err, form.ErrSubmitted), errors.Is(err, form.ErrClosed):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, context.Canceled):
		slog.Debug("request cancelled by client", "error", err)
		w.WriteHeader(StatusClientClosedRequest)
	case errors.Is(err, context.DeadlineExceeded):
		http.Error(w, "timed out", http.StatusGatewayTimeout)
	default:
		slog.Error("request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
