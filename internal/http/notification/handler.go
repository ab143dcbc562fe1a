package notification

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

type Queue interface {
	List() []notify.Notification
	Dismiss(id uuid.UUID) bool
}

type Handler struct {
	queue Queue
}

func NewHandler(queue Queue) *Handler {
	return &Handler{queue: queue}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Delete("/{id}", h.dismiss)
}

type notificationResponse struct {
	ID        uuid.UUID    `json:"id"`
	Message   string       `json:"message"`
	Kind      notify.Kind  `json:"kind"`
	State     notify.State `json:"state"`
	CreatedAt time.Time    `json:"createdAt"`
}

func (h *Handler) list(w http.ResponseWriter, _ *http.Request) {
	items := h.queue.List()

	resp := make([]notificationResponse, len(items))
	for i, n := range items {
		resp[i] = notificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Kind:      n.Kind,
			State:     n.State,
			CreatedAt: n.CreatedAt,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) dismiss(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if !h.queue.Dismiss(id) {
		http.Error(w, "notification not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
