package preference

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/preference"
)

type Handler struct {
	svc *preference.Service
}

func NewHandler(svc *preference.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/theme", h.getTheme)
	r.Put("/theme", h.setTheme)
}

type themeRequest struct {
	Theme preference.Theme `json:"theme"`
}

type themeResponse struct {
	Theme preference.Theme `json:"theme"`
}

func (h *Handler) getTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := h.svc.Theme(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, themeResponse{Theme: theme})
}

func (h *Handler) setTheme(w http.ResponseWriter, r *http.Request) {
	var req themeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.SetTheme(r.Context(), req.Theme); err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, themeResponse{Theme: req.Theme})
}
