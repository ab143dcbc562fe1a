package property

import (
	"strconv"

	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

// Property is a managed building.
type Property struct {
	ID             int64
	Name           string
	City           string
	UnitCount      int
	OccupancyRate  int // Percentage, 0-100
	Location       string
	BuildingNumber string
	District       string
	Street         string
	PostalCode     string
}

func (p Property) Key() int64 { return p.ID }

func (p Property) WithKey(id int64) Property {
	p.ID = id
	return p
}

var Config = collection.Config{
	Placement: collection.Append,
	Messages: collection.Messages{
		Added:   "تمت إضافة العقار بنجاح",
		Updated: "تم تحديث العقار بنجاح",
		Removed: "تم حذف العقار بنجاح",
	},
}

func Schema() form.Schema[Property] {
	return form.Schema[Property]{
		Blank: func() Property { return Property{} },
		Fields: []form.Field[Property]{
			text("name", "اسم العقار", true, func(p *Property) *string { return &p.Name }),
			text("city", "المدينة", true, func(p *Property) *string { return &p.City }),
			{
				Name: "unitCount", Label: "عدد الوحدات", Kind: form.KindInt, Required: true,
				Get: func(p Property) string { return strconv.Itoa(p.UnitCount) },
				Set: func(p *Property, v form.Value) { p.UnitCount = int(v.Int()) },
			},
			{
				Name: "occupancyRate", Label: "نسبة الإشغال (%)", Kind: form.KindInt, Required: true, Max: 100,
				Get: func(p Property) string { return strconv.Itoa(p.OccupancyRate) },
				Set: func(p *Property, v form.Value) { p.OccupancyRate = int(v.Int()) },
			},
			text("location", "الموقع", false, func(p *Property) *string { return &p.Location }),
			text("buildingNumber", "رقم المبنى", false, func(p *Property) *string { return &p.BuildingNumber }),
			text("district", "الحي", false, func(p *Property) *string { return &p.District }),
			text("street", "الشارع", false, func(p *Property) *string { return &p.Street }),
			text("postalCode", "الرمز البريدي", false, func(p *Property) *string { return &p.PostalCode }),
		},
	}
}

func View(tag language.Tag) listing.View[Property] {
	return listing.View[Property]{
		Fields: []listing.Field[Property]{
			{Name: "name", Value: func(p Property) string { return p.Name }},
			{Name: "city", Value: func(p Property) string { return p.City }},
		},
		Keys: []listing.Key[Property]{
			listing.Text("name", tag, func(p Property) string { return p.Name }),
			listing.Ordered("units", func(p Property) int { return p.UnitCount }),
			listing.Ordered("occupancy", func(p Property) int { return p.OccupancyRate }),
		},
		Default: listing.Spec{Key: "name", Direction: listing.Asc},
	}
}

func text(name, label string, required bool, ref func(*Property) *string) form.Field[Property] {
	return form.Field[Property]{
		Name:     name,
		Label:    label,
		Required: required,
		Get:      func(p Property) string { return *ref(&p) },
		Set:      func(p *Property, v form.Value) { *ref(p) = v.String() },
	}
}
