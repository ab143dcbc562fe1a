package form

import (
	"context"
	"fmt"
)

// Collection is the subset of a collection controller a form saves through.
type Collection[T any] interface {
	Add(ctx context.Context, draft T) (T, error)
	Update(ctx context.Context, updated T) (T, error)
}

// ControllerSaver routes creates to Add and updates to Update.
func ControllerSaver[T any](c Collection[T]) Saver[T] {
	return SaverFunc[T](func(ctx context.Context, sub Submission[T]) (T, error) {
		switch sub.Op {
		case OpCreate:
			return c.Add(ctx, sub.Record)
		case OpUpdate:
			return c.Update(ctx, sub.Record)
		default:
			var zero T
			return zero, fmt.Errorf("unsupported submission %q", sub.Op)
		}
	})
}
