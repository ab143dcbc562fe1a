package property_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/property"
)

var seed = []property.Property{
	{ID: 1, Name: "برج النخيل", City: "الرياض", UnitCount: 50, OccupancyRate: 92},
	{ID: 2, Name: "أجنحة جدة البحرية", City: "جدة", UnitCount: 30, OccupancyRate: 85},
}

func ids(items []property.Property) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}

	return out
}

func TestView(t *testing.T) {
	type testCase struct {
		name  string
		query string
		sort  string
		want  []int64
	}

	tests := []testCase{
		{name: "FilterCity", query: "جدة", sort: "name-asc", want: []int64{2}},
		{name: "OccupancyDesc", sort: "occupancy-desc", want: []int64{1, 2}},
		{name: "OccupancyAsc", sort: "occupancy-asc", want: []int64{2, 1}},
		{name: "UnitsAsc", sort: "units-asc", want: []int64{2, 1}},
		{name: "DefaultByName", want: []int64{2, 1}},
	}

	view := property.View(language.Arabic)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := view.Apply(seed, tt.query, listing.ParseSpec(tt.sort))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSchema_CreateThroughController(t *testing.T) {
	c := collection.NewController(collection.NewStore(seed...), nil, property.Config)

	f := form.NewCreate(property.Schema(), form.ControllerSaver[property.Property](c), form.Options{})
	require.NoError(t, f.SetField("name", "برج الفيصلية"))
	require.NoError(t, f.SetField("city", "الرياض"))
	require.NoError(t, f.SetField("unitCount", "40"))
	require.NoError(t, f.SetField("occupancyRate", "120"))

	pending, err := f.Submit(context.Background())
	require.NoError(t, err)

	got, err := pending.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, 100, got.OccupancyRate)
	assert.Equal(t, []int64{1, 2, 3}, ids(c.List(context.Background())))
}

func TestSchema_RequiredFields(t *testing.T) {
	err := property.Schema().Validate(property.Property{})

	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "city"}, verr.Fields)
}
