package notify

import "github.com/google/uuid"

// Notifier is the write side of the queue, used by controllers and services
// that report outcomes to the user.
//
//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=notify
type Notifier interface {
	Push(message string, kind Kind) uuid.UUID
}

var _ Notifier = (*Queue)(nil)
