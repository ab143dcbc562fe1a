package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

var ErrNotFound = errors.New("record not found")

// Placement decides where Add puts a new record.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// Messages are the user-facing notifications pushed after each mutation.
// An empty message is not pushed.
type Messages struct {
	Added   string
	Updated string
	Removed string
}

type Config struct {
	Placement Placement
	Messages  Messages
	// RemovedKind is the notification kind used on removal. Defaults to info.
	RemovedKind notify.Kind
}

type Controller[T Entity[T]] struct {
	store    *Store[T]
	seq      Sequence
	notifier notify.Notifier
	cfg      Config
}

func NewController[T Entity[T]](store *Store[T], notifier notify.Notifier, cfg Config) *Controller[T] {
	if cfg.RemovedKind == "" {
		cfg.RemovedKind = notify.KindInfo
	}

	c := &Controller[T]{
		store:    store,
		notifier: notifier,
		cfg:      cfg,
	}
	c.seq.Observe(store.MaxKey())

	return c
}

// Load replaces the collection. Keys issued afterwards stay above every
// loaded key.
func (c *Controller[T]) Load(items []T) {
	c.store.Load(items)
	c.seq.Observe(c.store.MaxKey())
}

func (c *Controller[T]) List(ctx context.Context) []T {
	return c.store.All()
}

func (c *Controller[T]) Get(ctx context.Context, id int64) (T, error) {
	item, ok := c.store.Get(id)
	if !ok {
		return item, fmt.Errorf("get %d: %w", id, ErrNotFound)
	}

	return item, nil
}

// Add assigns a fresh key to draft, whatever key it carried, and stores it.
func (c *Controller[T]) Add(ctx context.Context, draft T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	record := draft.WithKey(c.seq.Next())

	c.store.mutate(func(current []T) ([]T, bool) {
		if c.cfg.Placement == Prepend {
			return append([]T{record}, current...), true
		}

		return append(slices.Clip(current), record), true
	})

	c.push(c.cfg.Messages.Added, notify.KindSuccess)

	return record, nil
}

// AddAll stores drafts in one step, in order, without pushing a
// notification. Callers report the batch themselves.
func (c *Controller[T]) AddAll(ctx context.Context, drafts []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records := make([]T, len(drafts))
	for i, d := range drafts {
		records[i] = d.WithKey(c.seq.Next())
	}

	if len(records) == 0 {
		return records, nil
	}

	c.store.mutate(func(current []T) ([]T, bool) {
		if c.cfg.Placement == Prepend {
			return append(slices.Clone(records), current...), true
		}

		return append(slices.Clip(current), records...), true
	})

	return records, nil
}

// Update replaces the record sharing updated's key, keeping its position.
func (c *Controller[T]) Update(ctx context.Context, updated T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}

	changed := c.store.mutate(func(current []T) ([]T, bool) {
		i := slices.IndexFunc(current, func(item T) bool { return item.Key() == updated.Key() })
		if i < 0 {
			return nil, false
		}

		next := slices.Clone(current)
		next[i] = updated

		return next, true
	})
	if !changed {
		var zero T
		return zero, fmt.Errorf("update %d: %w", updated.Key(), ErrNotFound)
	}

	c.push(c.cfg.Messages.Updated, notify.KindSuccess)

	return updated, nil
}

// Remove deletes the record with the given key. It reports whether anything
// was removed; removing an unknown key is a silent no-op.
func (c *Controller[T]) Remove(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	removed := c.store.mutate(func(current []T) ([]T, bool) {
		i := slices.IndexFunc(current, func(item T) bool { return item.Key() == id })
		if i < 0 {
			return nil, false
		}

		return slices.Delete(slices.Clone(current), i, i+1), true
	})
	if removed {
		c.push(c.cfg.Messages.Removed, c.cfg.RemovedKind)
	}

	return removed, nil
}

func (c *Controller[T]) push(message string, kind notify.Kind) {
	if message == "" || c.notifier == nil {
		return
	}

	c.notifier.Push(message, kind)
}
