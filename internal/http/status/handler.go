package status

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

type Source interface {
	Loading() bool
}

type Themes interface {
	Theme(ctx context.Context) (preference.Theme, error)
}

type Handler struct {
	src    Source
	themes Themes
}

func NewHandler(src Source, themes Themes) *Handler {
	return &Handler{src: src, themes: themes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.status)
}

type statusResponse struct {
	Loading bool             `json:"loading"`
	Theme   preference.Theme `json:"theme"`
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	theme, err := h.themes.Theme(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Loading: h.src.Loading(), Theme: theme})
}
