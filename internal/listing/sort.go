package listing

import (
	"cmp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Spec selects a sort key and direction. Its string form is "key-direction",
// e.g. "name-asc".
type Spec struct {
	Key       string
	Direction Direction
}

// ParseSpec reads "key-direction". A missing or unknown direction means Asc.
func ParseSpec(s string) Spec {
	s = strings.TrimSpace(s)

	i := strings.LastIndex(s, "-")
	if i < 0 {
		return Spec{Key: s, Direction: Asc}
	}

	if Direction(s[i+1:]) == Desc {
		return Spec{Key: s[:i], Direction: Desc}
	}

	return Spec{Key: s[:i], Direction: Asc}
}

func (s Spec) String() string {
	if s.Key == "" {
		return ""
	}

	dir := s.Direction
	if dir == "" {
		dir = Asc
	}

	return s.Key + "-" + string(dir)
}

// Toggle flips the direction when key is already selected, otherwise it
// selects key ascending.
func (s Spec) Toggle(key string) Spec {
	if s.Key != key {
		return Spec{Key: key, Direction: Asc}
	}

	if s.Direction == Desc {
		return Spec{Key: key, Direction: Asc}
	}

	return Spec{Key: key, Direction: Desc}
}

// Key is a named ordering over T.
type Key[T any] struct {
	Name string
	// comparator builds a fresh comparison for a single sort call.
	comparator func() func(a, b T) int
}

// Text orders by the given string attribute using locale-aware collation.
func Text[T any](name string, tag language.Tag, value func(T) string) Key[T] {
	return Key[T]{
		Name: name,
		comparator: func() func(a, b T) int {
			// Collators are not safe for concurrent use.
			c := collate.New(tag)

			return func(a, b T) int {
				return c.CompareString(value(a), value(b))
			}
		},
	}
}

// Ordered orders by any naturally ordered attribute. ISO dates sort
// correctly as strings.
func Ordered[T any, V cmp.Ordered](name string, value func(T) V) Key[T] {
	return Key[T]{
		Name: name,
		comparator: func() func(a, b T) int {
			return func(a, b T) int {
				return cmp.Compare(value(a), value(b))
			}
		},
	}
}

func Decimal[T any](name string, value func(T) decimal.Decimal) Key[T] {
	return Key[T]{
		Name: name,
		comparator: func() func(a, b T) int {
			return func(a, b T) int {
				return value(a).Cmp(value(b))
			}
		},
	}
}

func (k Key[T]) compare(dir Direction) func(a, b T) int {
	cmpFn := k.comparator()
	if dir == Desc {
		return func(a, b T) int { return -cmpFn(a, b) }
	}

	return cmpFn
}
