package transaction

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/form"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
)

// Type represents the type of transaction (revenue or expense).
type Type string

const (
	TypeRevenue Type = "Revenue"
	TypeExpense Type = "Expense"
)

// Defaults for a blank transaction.
const (
	DefaultPropertyID = 1
	DefaultUnitID     = 101
)

// Transaction represents a financial movement against a property.
type Transaction struct {
	ID          int64
	Type        Type
	Category    string
	Amount      decimal.Decimal
	Date        string // YYYY-MM-DD
	Description string
	PropertyID  int64
	UnitID      int64 // 0 when the transaction is building-wide
}

func (t Transaction) Key() int64 { return t.ID }

func (t Transaction) WithKey(id int64) Transaction {
	t.ID = id
	return t
}

// Signed returns the amount as a signed contribution to net profit.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}

	return t.Amount
}

// Config places new transactions at the head, most recent first.
var Config = collection.Config{
	Placement: collection.Prepend,
	Messages: collection.Messages{
		Added:   "تمت إضافة المعاملة بنجاح",
		Updated: "تم تحديث المعاملة بنجاح",
		Removed: "تم حذف المعاملة بنجاح",
	},
}

func Schema() form.Schema[Transaction] {
	return form.Schema[Transaction]{
		Blank: func() Transaction {
			return Transaction{
				Type:       TypeRevenue,
				Date:       time.Now().Format(time.DateOnly),
				PropertyID: DefaultPropertyID,
				UnitID:     DefaultUnitID,
			}
		},
		Fields: []form.Field[Transaction]{
			{
				Name: "type", Label: "النوع", Kind: form.KindChoice, Required: true,
				Choices: []string{string(TypeRevenue), string(TypeExpense)},
				Get:     func(t Transaction) string { return string(t.Type) },
				Set:     func(t *Transaction, v form.Value) { t.Type = Type(v.String()) },
			},
			{
				Name: "category", Label: "الفئة", Required: true,
				Get: func(t Transaction) string { return t.Category },
				Set: func(t *Transaction, v form.Value) { t.Category = v.String() },
			},
			{
				Name: "amount", Label: "المبلغ", Kind: form.KindDecimal, Required: true,
				Get: func(t Transaction) string { return t.Amount.String() },
				Set: func(t *Transaction, v form.Value) { t.Amount = v.Decimal() },
			},
			{
				Name: "date", Label: "التاريخ", Kind: form.KindDate, Required: true,
				Get: func(t Transaction) string { return t.Date },
				Set: func(t *Transaction, v form.Value) { t.Date = v.String() },
			},
			{
				Name: "description", Label: "الوصف",
				Get: func(t Transaction) string { return t.Description },
				Set: func(t *Transaction, v form.Value) { t.Description = v.String() },
			},
			{
				Name: "propertyId", Label: "العقار", Kind: form.KindInt,
				Get: func(t Transaction) string { return strconv.FormatInt(t.PropertyID, 10) },
				Set: func(t *Transaction, v form.Value) { t.PropertyID = v.Int() },
			},
			{
				Name: "unitId", Label: "الوحدة", Kind: form.KindInt,
				Get: func(t Transaction) string { return strconv.FormatInt(t.UnitID, 10) },
				Set: func(t *Transaction, v form.Value) { t.UnitID = v.Int() },
			},
		},
	}
}

func View(tag language.Tag) listing.View[Transaction] {
	return listing.View[Transaction]{
		Fields: []listing.Field[Transaction]{
			{Name: "category", Value: func(t Transaction) string { return t.Category }},
			{Name: "description", Value: func(t Transaction) string { return t.Description }},
		},
		Keys: []listing.Key[Transaction]{
			listing.Ordered("date", func(t Transaction) string { return t.Date }),
			listing.Decimal("amount", func(t Transaction) decimal.Decimal { return t.Amount }),
			listing.Text("category", tag, func(t Transaction) string { return t.Category }),
		},
		Default: listing.Spec{Key: "date", Direction: listing.Desc},
	}
}
