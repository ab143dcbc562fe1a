package tenant

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

// DefaultUnitID is the unit a new tenant is assigned to until one is picked.
const DefaultUnitID = 101

// Tenant is a lease holder. Dates are ISO YYYY-MM-DD.
type Tenant struct {
	ID         int64
	Name       string
	NationalID string
	RentAmount decimal.Decimal
	StartDate  string
	EndDate    string
	UnitID     int64
}

func (t Tenant) Key() int64 { return t.ID }

func (t Tenant) WithKey(id int64) Tenant {
	t.ID = id
	return t
}

var Config = collection.Config{
	Placement: collection.Append,
	Messages: collection.Messages{
		Added:   "تمت إضافة المستأجر بنجاح",
		Updated: "تم تحديث المستأجر بنجاح",
		Removed: "تم حذف المستأجر بنجاح",
	},
}

func Schema() form.Schema[Tenant] {
	return form.Schema[Tenant]{
		Blank: func() Tenant { return Tenant{UnitID: DefaultUnitID} },
		Fields: []form.Field[Tenant]{
			{
				Name: "name", Label: "اسم المستأجر", Required: true,
				Get: func(t Tenant) string { return t.Name },
				Set: func(t *Tenant, v form.Value) { t.Name = v.String() },
			},
			{
				Name: "nationalId", Label: "رقم الهوية", Required: true,
				Get: func(t Tenant) string { return t.NationalID },
				Set: func(t *Tenant, v form.Value) { t.NationalID = v.String() },
			},
			{
				Name: "rentAmount", Label: "مبلغ الإيجار", Kind: form.KindDecimal, Required: true,
				Get: func(t Tenant) string { return t.RentAmount.String() },
				Set: func(t *Tenant, v form.Value) { t.RentAmount = v.Decimal() },
			},
			{
				Name: "startDate", Label: "تاريخ بدء العقد", Kind: form.KindDate, Required: true,
				Get: func(t Tenant) string { return t.StartDate },
				Set: func(t *Tenant, v form.Value) { t.StartDate = v.String() },
			},
			{
				Name: "endDate", Label: "تاريخ انتهاء العقد", Kind: form.KindDate, Required: true,
				Get: func(t Tenant) string { return t.EndDate },
				Set: func(t *Tenant, v form.Value) { t.EndDate = v.String() },
			},
			{
				Name: "unitId", Label: "الوحدة", Kind: form.KindInt,
				Get: func(t Tenant) string { return strconv.FormatInt(t.UnitID, 10) },
				Set: func(t *Tenant, v form.Value) { t.UnitID = v.Int() },
			},
		},
	}
}

func View(tag language.Tag) listing.View[Tenant] {
	return listing.View[Tenant]{
		Fields: []listing.Field[Tenant]{
			{Name: "name", Value: func(t Tenant) string { return t.Name }},
			{Name: "nationalId", Value: func(t Tenant) string { return t.NationalID }},
		},
		Keys: []listing.Key[Tenant]{
			listing.Text("name", tag, func(t Tenant) string { return t.Name }),
			listing.Decimal("rent", func(t Tenant) decimal.Decimal { return t.RentAmount }),
			listing.Ordered("startDate", func(t Tenant) string { return t.StartDate }),
			listing.Ordered("endDate", func(t Tenant) string { return t.EndDate }),
		},
		Default: listing.Spec{Key: "name", Direction: listing.Asc},
	}
}
