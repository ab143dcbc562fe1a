// Package form edits a draft copy of a record and hands it to a Saver after
// a fixed latency. The draft is never shared with the collection until the
// save lands.
package form

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const DefaultLatency = 600 * time.Millisecond

// Op tags a submission as a create or an update.
type Op int

const (
	OpCreate Op = iota + 1
	OpUpdate
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

type Submission[T any] struct {
	Op     Op
	Record T
}

// Saver persists a submission and returns the stored record.
type Saver[T any] interface {
	Save(ctx context.Context, sub Submission[T]) (T, error)
}

type SaverFunc[T any] func(ctx context.Context, sub Submission[T]) (T, error)

func (f SaverFunc[T]) Save(ctx context.Context, sub Submission[T]) (T, error) {
	return f(ctx, sub)
}

type Status int

const (
	StatusEditing Status = iota
	StatusSaving
	StatusSaved
	StatusClosed
)

type Options struct {
	Latency time.Duration
}

type Form[T any] struct {
	mu      sync.Mutex
	schema  Schema[T]
	saver   Saver[T]
	op      Op
	draft   T
	status  Status
	closed  bool
	latency time.Duration
}

// NewCreate opens a form on a blank record.
func NewCreate[T any](schema Schema[T], saver Saver[T], opts Options) *Form[T] {
	var draft T
	if schema.Blank != nil {
		draft = schema.Blank()
	}

	return &Form[T]{
		schema:  schema,
		saver:   saver,
		op:      OpCreate,
		draft:   draft,
		latency: opts.Latency,
	}
}

// NewEdit opens a form on a copy of record.
func NewEdit[T any](schema Schema[T], saver Saver[T], record T, opts Options) *Form[T] {
	return &Form[T]{
		schema:  schema,
		saver:   saver,
		op:      OpUpdate,
		draft:   record,
		latency: opts.Latency,
	}
}

func (f *Form[T]) Op() Op { return f.op }

func (f *Form[T]) Schema() Schema[T] { return f.schema }

func (f *Form[T]) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.status
}

func (f *Form[T]) Draft() T {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.draft
}

// Value returns the current text of a field.
func (f *Form[T]) Value(name string) (string, error) {
	field, ok := f.schema.Field(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrUnknownField)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return field.Get(f.draft), nil
}

// SetField coerces raw according to the field kind and writes it into the draft.
func (f *Form[T]) SetField(name, raw string) error {
	field, ok := f.schema.Field(name)
	if !ok {
		return fmt.Errorf("%s: %w", name, ErrUnknownField)
	}

	v, err := field.coerce(raw)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return err
	}

	field.Set(&f.draft, v)

	return nil
}

func (f *Form[T]) Validate() error {
	return f.schema.Validate(f.Draft())
}

// Submit validates the draft and schedules the save. The save runs to
// completion even if ctx is cancelled or the form is closed afterwards.
func (f *Form[T]) Submit(ctx context.Context) (*Pending[T], error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.editable(); err != nil {
		return nil, err
	}

	if err := f.schema.Validate(f.draft); err != nil {
		return nil, err
	}

	f.status = StatusSaving
	sub := Submission[T]{Op: f.op, Record: f.draft}
	saveCtx := context.WithoutCancel(ctx)

	return Delay(f.latency, func() (T, error) {
		if sub.Op == OpCreate && f.schema.OnCreate != nil {
			sub.Record = f.schema.OnCreate(sub.Record)
		}

		record, err := f.saver.Save(saveCtx, sub)
		f.finish(err)

		return record, err
	}), nil
}

// Close abandons the form. An un-submitted draft is discarded; a save that
// is already in flight still completes.
func (f *Form[T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.status == StatusEditing {
		var zero T
		f.draft = zero
	}

	f.closed = true

	if f.status != StatusSaving {
		f.status = StatusClosed
	}
}

func (f *Form[T]) finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.closed:
		f.status = StatusClosed
	case err != nil:
		f.status = StatusEditing
	default:
		f.status = StatusSaved
	}
}

// editable must be called with f.mu held.
func (f *Form[T]) editable() error {
	switch f.status {
	case StatusSaving:
		return ErrSaving
	case StatusSaved:
		return ErrSubmitted
	case StatusClosed:
		return ErrClosed
	default:
		return nil
	}
}
