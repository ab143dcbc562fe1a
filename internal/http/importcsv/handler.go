package importcsv

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	httpTransaction "github.com/MrJamesThe3rd/aqari/internal/http/transaction"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

type Importer interface {
	Import(ctx context.Context, r io.Reader) ([]transaction.Transaction, error)
}

type Handler struct {
	importSvc Importer
}

func NewHandler(importSvc Importer) *Handler {
	return &Handler{importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importResponse struct {
	Imported     int                        `json:"imported"`
	Transactions []httpTransaction.Response `json:"transactions"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	txs, err := h.importSvc.Import(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{
		Imported:     len(txs),
		Transactions: make([]httpTransaction.Response, 0, len(txs)),
	}

	for _, tx := range txs {
		resp.Transactions = append(resp.Transactions, httpTransaction.ToResponse(tx))
	}

	respond.JSON(w, http.StatusCreated, resp)
}
