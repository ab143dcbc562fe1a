package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/note"
	"github.com/MrJamesThe3rd/aqari/internal/property"
	"github.com/MrJamesThe3rd/aqari/internal/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/tenant"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

func NewPropertiesModel(a *app.App) EntityModel[property.Property] {
	return NewEntityModel(EntityConfig[property.Property]{
		Title:  "العقارات",
		Noun:   "العقار",
		Source: a.Properties,
		View:   property.View(a.Collation()),
		Columns: []Column[property.Property]{
			{Title: "العقار", Width: 24, Value: func(p property.Property) string { return p.Name }},
			{Title: "المدينة", Width: 12, Value: func(p property.Property) string { return p.City }},
			{Title: "الوحدات", Width: 8, Value: func(p property.Property) string { return FormatCount(p.UnitCount) }},
			{Title: "الإشغال", Width: 8, Value: func(p property.Property) string { return FormatPercent(p.OccupancyRate) }},
		},
		Open:    a.PropertyForm,
		Confirm: true,
		Detail: func(p property.Property) string {
			return strings.Join([]string{
				"المدينة: " + p.City,
				"الموقع: " + p.Location,
				"رقم المبنى: " + p.BuildingNumber,
				"الحي: " + p.District,
				"الشارع: " + p.Street,
				"الرمز البريدي: " + p.PostalCode,
			}, "\n")
		},
	})
}

func NewTenantsModel(a *app.App) EntityModel[tenant.Tenant] {
	return NewEntityModel(EntityConfig[tenant.Tenant]{
		Title:  "المستأجرين",
		Noun:   "المستأجر",
		Source: a.Tenants,
		View:   tenant.View(a.Collation()),
		Columns: []Column[tenant.Tenant]{
			{Title: "الاسم", Width: 22, Value: func(t tenant.Tenant) string { return t.Name }},
			{Title: "رقم الهوية", Width: 12, Value: func(t tenant.Tenant) string { return t.NationalID }},
			{Title: "الإيجار", Width: 14, Value: func(t tenant.Tenant) string { return FormatAmount(t.RentAmount) }},
			{Title: "البداية", Width: 11, Value: func(t tenant.Tenant) string { return t.StartDate }},
			{Title: "النهاية", Width: 11, Value: func(t tenant.Tenant) string { return t.EndDate }},
		},
		Open:    a.TenantForm,
		Confirm: true,
		Detail: func(t tenant.Tenant) string {
			return fmt.Sprintf("الوحدة: %d\nالعقد: %s → %s", t.UnitID, t.StartDate, t.EndDate)
		},
	})
}

func NewTransactionsModel(a *app.App) EntityModel[transaction.Transaction] {
	return NewEntityModel(EntityConfig[transaction.Transaction]{
		Title:  "المعاملات المالية",
		Noun:   "المعاملة",
		Source: a.Transactions,
		View:   transaction.View(a.Collation()),
		Columns: []Column[transaction.Transaction]{
			{Title: "التاريخ", Width: 11, Value: func(t transaction.Transaction) string { return t.Date }},
			{Title: "النوع", Width: 8, Value: func(t transaction.Transaction) string { return typeLabel(t.Type) }},
			{Title: "الفئة", Width: 14, Value: func(t transaction.Transaction) string { return t.Category }},
			{Title: "المبلغ", Width: 14, Value: func(t transaction.Transaction) string { return FormatAmount(t.Signed()) }},
			{Title: "الوصف", Width: 30, Value: func(t transaction.Transaction) string { return t.Description }},
		},
		Open:    a.TransactionForm,
		Confirm: true,
		Detail: func(t transaction.Transaction) string {
			unit := "على مستوى المبنى"
			if t.UnitID != 0 {
				unit = strconv.FormatInt(t.UnitID, 10)
			}

			return fmt.Sprintf("العقار: %d\nالوحدة: %s\n\n%s", t.PropertyID, unit, t.Description)
		},
	})
}

// NewRemindersModel lists upcoming rent. Marking a reminder paid removes it.
func NewRemindersModel(a *app.App) EntityModel[reminder.Reminder] {
	return NewEntityModel(EntityConfig[reminder.Reminder]{
		Title:  "التذكيرات",
		Noun:   "الفاتورة",
		Source: a.Reminders,
		View:   reminder.View(a.Collation()),
		Columns: []Column[reminder.Reminder]{
			{Title: "المستأجر", Width: 20, Value: func(r reminder.Reminder) string { return r.TenantName }},
			{Title: "العقار", Width: 20, Value: func(r reminder.Reminder) string { return r.PropertyName }},
			{Title: "الوحدة", Width: 10, Value: func(r reminder.Reminder) string { return r.UnitName }},
			{Title: "المبلغ", Width: 14, Value: func(r reminder.Reminder) string { return FormatAmount(r.RentAmount) }},
			{Title: "الاستحقاق", Width: 11, Value: func(r reminder.Reminder) string { return r.DueDate }},
		},
		RemoveKey:   "p",
		RemoveLabel: "تحديد كمدفوعة",
	})
}

func NewNotesModel(a *app.App) EntityModel[note.Note] {
	return NewEntityModel(EntityConfig[note.Note]{
		Title:  "الملاحظات",
		Noun:   "الملاحظة",
		Source: a.Notes,
		View:   note.View(a.Collation()),
		Columns: []Column[note.Note]{
			{Title: "العنوان", Width: 24, Value: func(n note.Note) string { return n.Title }},
			{Title: "اللون", Width: 8, Value: func(n note.Note) string { return string(n.Color) }},
			{Title: "التاريخ", Width: 11, Value: func(n note.Note) string { return n.CreatedAt.Format("2006-01-02") }},
		},
		Open:    a.NoteForm,
		Confirm: true,
		Detail: func(n note.Note) string {
			return n.Content
		},
	})
}

func typeLabel(t transaction.Type) string {
	if t == transaction.TypeExpense {
		return "مصروف"
	}

	return "إيراد"
}
