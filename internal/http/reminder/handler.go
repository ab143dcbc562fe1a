package reminder

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/http/resource"
	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/reminder"
)

type Service interface {
	List(ctx context.Context) []reminder.Reminder
	Remove(ctx context.Context, id int64) (bool, error)
}

type Handler struct {
	svc  Service
	view listing.View[reminder.Reminder]
}

func NewHandler(svc Service, tag language.Tag) *Handler {
	return &Handler{svc: svc, view: reminder.View(tag)}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/{id}/paid", h.markPaid)
}

type reminderResponse struct {
	ID           int64           `json:"id"`
	TenantName   string          `json:"tenantName"`
	UnitName     string          `json:"unitName"`
	PropertyName string          `json:"propertyName"`
	RentAmount   decimal.Decimal `json:"rentAmount"`
	DueDate      string          `json:"dueDate"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.view.Apply(h.svc.List(r.Context()), q.Get("q"), listing.ParseSpec(q.Get("sort")))

	resp := make([]reminderResponse, len(items))
	for i, rem := range items {
		resp[i] = reminderResponse{
			ID:           rem.ID,
			TenantName:   rem.TenantName,
			UnitName:     rem.UnitName,
			PropertyName: rem.PropertyName,
			RentAmount:   rem.RentAmount,
			DueDate:      rem.DueDate,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := resource.ParseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	removed, err := h.svc.Remove(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if !removed {
		respond.Error(w, collection.ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
