package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aqari/internal/export"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

type Exporter interface {
	Export(ctx context.Context, w io.Writer, opts export.Options) (int, error)
}

type Handler struct {
	svc Exporter
}

func NewHandler(svc Exporter) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/transactions.csv", h.transactions)
}

// transactions renders into memory first so a failed export still gets a
// proper error status.
func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	encoding, err := export.ParseEncoding(q.Get("encoding"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer

	n, err := h.svc.Export(r.Context(), &buf, export.Options{
		Query:    q.Get("q"),
		Sort:     listing.ParseSpec(q.Get("sort")),
		Encoding: encoding,
	})
	if err != nil {
		slog.Error("failed to export transactions", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv; charset="+string(encoding))
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"", time.Now().Format("20060102")))
	w.Header().Set("X-Export-Count", strconv.Itoa(n))

	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
