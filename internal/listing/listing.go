// Package listing derives the visible, ordered subset of a collection from a
// search query and a sort selection. It never mutates its input.
package listing

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Field is a searchable text attribute.
type Field[T any] struct {
	Name  string
	Value func(T) string
}

// Filter keeps items where any field contains query, ignoring case.
// A blank query keeps everything.
func Filter[T any](items []T, query string, fields []Field[T]) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return slices.Clone(items)
	}

	fold := cases.Lower(language.Und)
	needle := fold.String(query)

	out := make([]T, 0, len(items))

	for _, item := range items {
		for _, f := range fields {
			if strings.Contains(fold.String(f.Value(item)), needle) {
				out = append(out, item)
				break
			}
		}
	}

	return out
}

// Sort returns a stably sorted copy of items.
func Sort[T any](items []T, key Key[T], dir Direction) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, key.compare(dir))

	return out
}

// View bundles the searchable fields and sort keys of one entity type.
type View[T any] struct {
	Fields  []Field[T]
	Keys    []Key[T]
	Default Spec
}

func (v View[T]) Key(name string) (Key[T], bool) {
	for _, k := range v.Keys {
		if k.Name == name {
			return k, true
		}
	}

	return Key[T]{}, false
}

// KeyNames lists the sort keys in declaration order.
func (v View[T]) KeyNames() []string {
	out := make([]string, len(v.Keys))
	for i, k := range v.Keys {
		out[i] = k.Name
	}

	return out
}

// Apply filters items by query and orders the result by spec. An empty spec
// falls back to the view default; an unknown key keeps source order.
func (v View[T]) Apply(items []T, query string, spec Spec) []T {
	filtered := Filter(items, query, v.Fields)

	if spec.Key == "" {
		spec = v.Default
	}

	key, ok := v.Key(spec.Key)
	if !ok {
		return filtered
	}

	return Sort(filtered, key, spec.Direction)
}
