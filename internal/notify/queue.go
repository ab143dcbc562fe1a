package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for display.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// State is the lifecycle stage of a notification. Removed notifications are
// no longer in the queue, so there is no state for them.
type State string

const (
	StateVisible  State = "visible"
	StateExpiring State = "expiring"
)

const (
	DefaultDisplayFor = 4 * time.Second
	DefaultExitAfter  = 300 * time.Millisecond
)

// Notification is a short-lived, user-visible status message.
type Notification struct {
	ID        uuid.UUID
	Message   string
	Kind      Kind
	State     State
	CreatedAt time.Time
}

type entry struct {
	Notification
	timer *time.Timer
}

// Queue holds notifications in insertion order (oldest first). Every
// notification owns its timers, so expiring or dismissing one never affects
// another.
type Queue struct {
	mu      sync.Mutex
	entries []*entry
	closed  bool

	displayFor time.Duration
	exitAfter  time.Duration

	changes chan struct{}
}

type Option func(*Queue)

// WithDisplayFor sets how long a notification stays visible before it starts expiring.
func WithDisplayFor(d time.Duration) Option {
	return func(q *Queue) { q.displayFor = d }
}

// WithExitAfter sets the delay between expiring and removal.
func WithExitAfter(d time.Duration) Option {
	return func(q *Queue) { q.exitAfter = d }
}

func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		displayFor: DefaultDisplayFor,
		exitAfter:  DefaultExitAfter,
		changes:    make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(q)
	}

	return q
}

// Push appends a new visible notification and starts its display timer.
func (q *Queue) Push(message string, kind Kind) uuid.UUID {
	e := &entry{Notification: Notification{
		ID:        uuid.New(),
		Message:   message,
		Kind:      kind,
		State:     StateVisible,
		CreatedAt: time.Now(),
	}}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = append(q.entries, e)

	if !q.closed {
		id := e.ID
		e.timer = time.AfterFunc(q.displayFor, func() { q.expire(id) })
	}

	q.signal()

	return e.ID
}

// Dismiss moves a visible notification to expiring immediately. It reports
// false when the id is unknown or the notification is already expiring.
func (q *Queue) Dismiss(id uuid.UUID) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.find(id)
	if e == nil || e.State != StateVisible {
		return false
	}

	q.beginExit(e)

	return true
}

// List returns a snapshot of the queue, oldest first.
func (q *Queue) List() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.entries))
	for i, e := range q.entries {
		out[i] = e.Notification
	}

	return out
}

// Changes delivers a coalesced signal whenever the queue contents change.
// The channel is closed by Close.
func (q *Queue) Changes() <-chan struct{} {
	return q.changes
}

// Close stops every pending timer. Notifications already in the queue stay
// where they are; no further transitions happen.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true

	for _, e := range q.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}

	close(q.changes)
}

func (q *Queue) expire(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.find(id)
	if e == nil || e.State != StateVisible {
		return
	}

	q.beginExit(e)
}

// beginExit must be called with q.mu held.
func (q *Queue) beginExit(e *entry) {
	if e.timer != nil {
		e.timer.Stop()
	}

	e.State = StateExpiring

	if !q.closed {
		id := e.ID
		e.timer = time.AfterFunc(q.exitAfter, func() { q.remove(id) })
	}

	q.signal()
}

func (q *Queue) remove(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.entries = slices.DeleteFunc(slices.Clone(q.entries), func(e *entry) bool {
		return e.ID == id
	})

	q.signal()
}

func (q *Queue) find(id uuid.UUID) *entry {
	for _, e := range q.entries {
		if e.ID == id {
			return e
		}
	}

	return nil
}

// signal must be called with q.mu held.
func (q *Queue) signal() {
	if q.closed {
		return
	}

	select {
	case q.changes <- struct{}{}:
	default:
	}
}
