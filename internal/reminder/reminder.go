// Package reminder holds upcoming rent payments. Reminders are read-only
// apart from being marked paid, which removes them.
package reminder

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/notify"
)

// Reminder carries denormalized names so it reads without joins.
type Reminder struct {
	ID           int64
	TenantName   string
	UnitName     string
	PropertyName string
	RentAmount   decimal.Decimal
	DueDate      string
}

func (r Reminder) Key() int64 { return r.ID }

func (r Reminder) WithKey(id int64) Reminder {
	r.ID = id
	return r
}

var Config = collection.Config{
	Placement: collection.Append,
	Messages: collection.Messages{
		Removed: "تم تحديد الفاتورة كمدفوعة",
	},
	RemovedKind: notify.KindSuccess,
}

func View(tag language.Tag) listing.View[Reminder] {
	return listing.View[Reminder]{
		Fields: []listing.Field[Reminder]{
			{Name: "tenantName", Value: func(r Reminder) string { return r.TenantName }},
			{Name: "propertyName", Value: func(r Reminder) string { return r.PropertyName }},
			{Name: "unitName", Value: func(r Reminder) string { return r.UnitName }},
		},
		Keys: []listing.Key[Reminder]{
			listing.Ordered("dueDate", func(r Reminder) string { return r.DueDate }),
			listing.Decimal("rent", func(r Reminder) decimal.Decimal { return r.RentAmount }),
			listing.Text("tenant", tag, func(r Reminder) string { return r.TenantName }),
		},
		Default: listing.Spec{Key: "dueDate", Direction: listing.Asc},
	}
}
