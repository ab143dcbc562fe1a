package form

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind decides how raw input text is coerced before it reaches a record.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindDecimal
	KindDate
	KindChoice
)

// Value is a coerced field value.
type Value struct {
	text string
	num  int64
	dec  decimal.Decimal
}

func (v Value) String() string           { return v.text }
func (v Value) Int() int64               { return v.num }
func (v Value) Decimal() decimal.Decimal { return v.dec }

// Field describes one editable attribute of T.
type Field[T any] struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
	// Max clamps KindInt values when positive.
	Max     int64
	Choices []string
	Get     func(T) string
	Set     func(*T, Value)
}

// Schema is the editable surface of a record type.
type Schema[T any] struct {
	Fields []Field[T]
	Blank  func() T
	// OnCreate derives fields at the moment a new record is saved.
	OnCreate func(T) T
}

func (s Schema[T]) Field(name string) (Field[T], bool) {
	i := slices.IndexFunc(s.Fields, func(f Field[T]) bool { return f.Name == name })
	if i < 0 {
		return Field[T]{}, false
	}

	return s.Fields[i], true
}

// Validate reports every required field that is blank.
func (s Schema[T]) Validate(record T) error {
	var missing []string

	for _, f := range s.Fields {
		if f.Required && strings.TrimSpace(f.Get(record)) == "" {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing, Reason: "required"}
	}

	return nil
}

// coerce turns raw input into a Value. Numbers that do not parse become
// zero and negatives are clamped to zero; dates and choices are rejected
// when malformed.
func (f Field[T]) coerce(raw string) (Value, error) {
	raw = strings.TrimSpace(raw)

	switch f.Kind {
	case KindInt:
		n := parseInt(raw)
		if n < 0 {
			n = 0
		}

		if f.Max > 0 && n > f.Max {
			n = f.Max
		}

		return Value{text: strconv.FormatInt(n, 10), num: n, dec: decimal.NewFromInt(n)}, nil

	case KindDecimal:
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			d = decimal.Zero
		}

		return Value{text: d.String(), num: d.IntPart(), dec: d}, nil

	case KindDate:
		if raw != "" {
			if _, err := time.Parse(time.DateOnly, raw); err != nil {
				return Value{}, &ValidationError{Fields: []string{f.Name}, Reason: "expected a YYYY-MM-DD date"}
			}
		}

		return Value{text: raw}, nil

	case KindChoice:
		if raw != "" && !slices.Contains(f.Choices, raw) {
			return Value{}, &ValidationError{Fields: []string{f.Name}, Reason: "must be one of " + strings.Join(f.Choices, ", ")}
		}

		return Value{text: raw}, nil

	default:
		return Value{text: raw}, nil
	}
}

// parseInt reads the leading integer of s, so "12.7" is 12. Anything
// unparseable is 0.
func parseInt(s string) int64 {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	if d, err := decimal.NewFromString(s); err == nil {
		return d.IntPart()
	}

	return 0
}
