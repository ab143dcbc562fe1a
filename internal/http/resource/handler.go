// Package resource serves one collection over JSON: list with search and
// sort, get, create and update through a form, and delete.
package resource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

type Controller[T any] interface {
	List(ctx context.Context) []T
	Get(ctx context.Context, id int64) (T, error)
	Add(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, updated T) (T, error)
	Remove(ctx context.Context, id int64) (bool, error)
}

type Config[T any] struct {
	Controller Controller[T]
	Schema     form.Schema[T]
	View       listing.View[T]
	Forms      form.Options
	// Encode turns a record into its wire representation.
	Encode func(T) any
}

type Handler[T any] struct {
	cfg Config[T]
}

func NewHandler[T any](cfg Config[T]) *Handler[T] {
	return &Handler[T]{cfg: cfg}
}

func (h *Handler[T]) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *Handler[T]) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items := h.cfg.View.Apply(h.cfg.Controller.List(r.Context()), q.Get("q"), listing.ParseSpec(q.Get("sort")))

	resp := make([]any, len(items))
	for i, item := range items {
		resp[i] = h.cfg.Encode(item)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler[T]) get(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := h.cfg.Controller.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, h.cfg.Encode(item))
}

func (h *Handler[T]) create(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f := form.NewCreate(h.cfg.Schema, form.ControllerSaver[T](h.cfg.Controller), h.cfg.Forms)
	h.submit(w, r, f, fields, http.StatusCreated)
}

func (h *Handler[T]) update(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fields, err := decodeFields(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := h.cfg.Controller.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	f := form.NewEdit(h.cfg.Schema, form.ControllerSaver[T](h.cfg.Controller), record, h.cfg.Forms)
	h.submit(w, r, f, fields, http.StatusOK)
}

func (h *Handler[T]) delete(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	removed, err := h.cfg.Controller.Remove(r.Context(), id)
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

// submit applies fields in name order, then waits for the delayed save.
func (h *Handler[T]) submit(w http.ResponseWriter, r *http.Request, f *form.Form[T], fields map[string]string, status int) {
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		if err := f.SetField(name, fields[name]); err != nil {
			f.Close()
			respond.Error(w, err)

			return
		}
	}

	pending, err := f.Submit(r.Context())
	if err != nil {
		f.Close()
		respond.Error(w, err)

		return
	}

	record, err := pending.Wait(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, status, h.cfg.Encode(record))
}

func ParseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// decodeFields reads a flat JSON object into raw field text. Numbers may
// arrive as JSON numbers or strings; null clears a field. The id key is
// ignored since keys are assigned by the collection.
func decodeFields(r *http.Request) (map[string]string, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid body: %w", err)
	}

	fields := make(map[string]string, len(raw))

	for name, value := range raw {
		if name == "id" {
			continue
		}

		value = bytes.TrimSpace(value)

		switch {
		case bytes.Equal(value, []byte("null")):
			fields[name] = ""
		case len(value) > 0 && value[0] == '"':
			var s string
			if err := json.Unmarshal(value, &s); err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}

			fields[name] = s
		case len(value) > 0 && (value[0] == '{' || value[0] == '['):
			return nil, fmt.Errorf("field %s: expected a scalar", name)
		default:
			fields[name] = string(value)
		}
	}

	return fields, nil
}
