package listing_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

type building struct {
	ID        int64
	Name      string
	City      string
	Occupancy int
	Rent      decimal.Decimal
	Opened    string
}

var buildings = []building{
	{ID: 1, Name: "برج النخيل", City: "الرياض", Occupancy: 92, Rent: decimal.NewFromInt(5000), Opened: "2021-03-01"},
	{ID: 2, Name: "أجنحة جدة البحرية", City: "جدة", Occupancy: 85, Rent: decimal.NewFromInt(6500), Opened: "2019-11-15"},
	{ID: 3, Name: "مركز الدمام للأعمال", City: "الدمام", Occupancy: 95, Rent: decimal.NewFromInt(5500), Opened: "2023-06-30"},
	{ID: 4, Name: "Marina Tower", City: "Jeddah", Occupancy: 70, Rent: decimal.NewFromInt(4000), Opened: "2020-01-10"},
}

var view = listing.View[building]{
	Fields: []listing.Field[building]{
		{Name: "name", Value: func(b building) string { return b.Name }},
		{Name: "city", Value: func(b building) string { return b.City }},
	},
	Keys: []listing.Key[building]{
		listing.Text("name", language.Arabic, func(b building) string { return b.Name }),
		listing.Ordered("occupancy", func(b building) int { return b.Occupancy }),
		listing.Decimal("rent", func(b building) decimal.Decimal { return b.Rent }),
		listing.Ordered("opened", func(b building) string { return b.Opened }),
	},
	Default: listing.Spec{Key: "name", Direction: listing.Asc},
}

func ids(items []building) []int64 {
	out := make([]int64, len(items))
	for i, b := range items {
		out[i] = b.ID
	}

	return out
}

func TestFilter(t *testing.T) {
	type testCase struct {
		name  string
		query string
		want  []int64
	}

	tests := []testCase{
		{name: "ArabicCity", query: "جدة", want: []int64{2}},
		{name: "ArabicName", query: "برج", want: []int64{1}},
		{name: "CaseInsensitive", query: "MARINA", want: []int64{4}},
		{name: "Blank", query: "   ", want: []int64{1, 2, 3, 4}},
		{name: "NoMatch", query: "مكة", want: []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listing.Filter(buildings, tt.query, view.Fields)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_DescReversesAsc(t *testing.T) {
	for _, key := range view.Keys {
		t.Run(key.Name, func(t *testing.T) {
			asc := ids(listing.Sort(buildings, key, listing.Asc))
			desc := ids(listing.Sort(buildings, key, listing.Desc))

			slices.Reverse(desc)
			assert.Equal(t, asc, desc)
		})
	}
}

func TestSort_Keys(t *testing.T) {
	type testCase struct {
		name string
		spec listing.Spec
		want []int64
	}

	tests := []testCase{
		{name: "OccupancyDesc", spec: listing.Spec{Key: "occupancy", Direction: listing.Desc}, want: []int64{3, 1, 2, 4}},
		{name: "RentAsc", spec: listing.Spec{Key: "rent", Direction: listing.Asc}, want: []int64{4, 1, 3, 2}},
		{name: "OpenedAsc", spec: listing.Spec{Key: "opened", Direction: listing.Asc}, want: []int64{2, 4, 1, 3}},
		{name: "UnknownKeepsOrder", spec: listing.Spec{Key: "nope", Direction: listing.Desc}, want: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view.Apply(buildings, "", tt.spec)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSort_ArabicCollation(t *testing.T) {
	// Hamza and madda forms of alef share its primary weight, so the second
	// letter decides. Code point order is the exact reverse.
	items := []building{
		{ID: 1, Name: "آمنة"},
		{ID: 2, Name: "أحمد"},
		{ID: 3, Name: "ابراهيم"},
	}

	byCodePoint := slices.Clone(items)
	slices.SortFunc(byCodePoint, func(a, b building) int { return strings.Compare(a.Name, b.Name) })
	assert.Equal(t, []int64{1, 2, 3}, ids(byCodePoint))

	assert.Equal(t, []int64{3, 2, 1}, ids(view.Apply(items, "", listing.ParseSpec("name-asc"))))
	assert.Equal(t, []int64{1, 2, 3}, ids(view.Apply(items, "", listing.ParseSpec("name-desc"))))
}

func TestSort_Stable(t *testing.T) {
	items := []building{
		{ID: 1, Occupancy: 50},
		{ID: 2, Occupancy: 40},
		{ID: 3, Occupancy: 50},
		{ID: 4, Occupancy: 40},
	}

	key, _ := view.Key("occupancy")

	assert.Equal(t, []int64{2, 4, 1, 3}, ids(listing.Sort(items, key, listing.Asc)))
	assert.Equal(t, []int64{1, 3, 2, 4}, ids(listing.Sort(items, key, listing.Desc)))
}

func TestApply_FilterThenSort(t *testing.T) {
	subset := buildings[:3]

	got := view.Apply(subset, "ر", listing.Spec{Key: "occupancy", Direction: listing.Desc})
	assert.Equal(t, []int64{3, 1, 2}, ids(got))

	got = view.Apply(subset, "جدة", listing.ParseSpec("occupancy-desc"))
	assert.Equal(t, []int64{2}, ids(got))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	input := slices.Clone(buildings)

	view.Apply(input, "", listing.Spec{Key: "occupancy", Direction: listing.Desc})

	assert.Equal(t, buildings, input)
}

func TestParseSpec(t *testing.T) {
	type testCase struct {
		in   string
		want listing.Spec
	}

	tests := []testCase{
		{in: "name-asc", want: listing.Spec{Key: "name", Direction: listing.Asc}},
		{in: "startDate-desc", want: listing.Spec{Key: "startDate", Direction: listing.Desc}},
		{in: "units", want: listing.Spec{Key: "units", Direction: listing.Asc}},
		{in: "units-sideways", want: listing.Spec{Key: "units", Direction: listing.Asc}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, listing.ParseSpec(tt.in))
		})
	}
}

func TestSpec_Toggle(t *testing.T) {
	spec := listing.Spec{Key: "name", Direction: listing.Asc}

	spec = spec.Toggle("name")
	assert.Equal(t, "name-desc", spec.String())

	spec = spec.Toggle("name")
	assert.Equal(t, "name-asc", spec.String())

	spec = spec.Toggle("units")
	assert.Equal(t, "units-asc", spec.String())
}
