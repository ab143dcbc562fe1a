// Package fixture provides the initial data injected into the collections
// at startup.
package fixture

import (
	_ "embed"

	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/aqari/internal/collection"
	"github.com/MrJamesThe3rd/aqari/internal/encoding"
	"github.com/MrJamesThe3rd/aqari/internal/note"
	"github.com/MrJamesThe3rd/aqari/internal/property"
	"github.com/MrJamesThe3rd/aqari/internal/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/tenant"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

//go:embed seed.json
var seed []byte

// Set is one initial value per collection.
type Set struct {
	Properties   []property.Property
	Tenants      []tenant.Tenant
	Transactions []transaction.Transaction
	Reminders    []reminder.Reminder
	Notes        []note.Note
}

// Default returns the built-in demo data.
func Default() (Set, error) {
	return Decode(bytes.NewReader(seed))
}

// Open reads a fixture file in any supported text encoding.
func Open(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	r, _, err := encoding.NewUTF8Reader(f)
	if err != nil {
		return Set{}, fmt.Errorf("detect fixtures encoding: %w", err)
	}

	return Decode(r)
}

type fileDTO struct {
	Properties []struct {
		ID             int64  `json:"id"`
		Name           string `json:"name"`
		City           string `json:"city"`
		UnitCount      int    `json:"unitCount"`
		OccupancyRate  int    `json:"occupancyRate"`
		Location       string `json:"location"`
		BuildingNumber string `json:"buildingNumber"`
		District       string `json:"district"`
		Street         string `json:"street"`
		PostalCode     string `json:"postalCode"`
	} `json:"properties"`
	Tenants []struct {
		ID         int64           `json:"id"`
		Name       string          `json:"name"`
		NationalID string          `json:"nationalId"`
		RentAmount decimal.Decimal `json:"rentAmount"`
		StartDate  string          `json:"startDate"`
		EndDate    string          `json:"endDate"`
		UnitID     int64           `json:"unitId"`
	} `json:"tenants"`
	Transactions []struct {
		ID          int64           `json:"id"`
		Type        string          `json:"type"`
		Category    string          `json:"category"`
		Amount      decimal.Decimal `json:"amount"`
		Date        string          `json:"date"`
		Description string          `json:"description"`
		PropertyID  int64           `json:"propertyId"`
		UnitID      int64           `json:"unitId"`
	} `json:"transactions"`
	Reminders []struct {
		ID           int64           `json:"id"`
		TenantName   string          `json:"tenantName"`
		UnitName     string          `json:"unitName"`
		PropertyName string          `json:"propertyName"`
		RentAmount   decimal.Decimal `json:"rentAmount"`
		DueDate      string          `json:"dueDate"`
	} `json:"reminders"`
	Notes []struct {
		ID        int64  `json:"id"`
		Title     string `json:"title"`
		Content   string `json:"content"`
		Color     string `json:"color"`
		CreatedAt string `json:"createdAt"`
	} `json:"notes"`
}

// Decode reads a UTF-8 JSON fixture document.
func Decode(r io.Reader) (Set, error) {
	var dto fileDTO
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return Set{}, fmt.Errorf("decode fixtures: %w", err)
	}

	var set Set

	for _, p := range dto.Properties {
		set.Properties = append(set.Properties, property.Property{
			ID:             p.ID,
			Name:           p.Name,
			City:           p.City,
			UnitCount:      p.UnitCount,
			OccupancyRate:  p.OccupancyRate,
			Location:       p.Location,
			BuildingNumber: p.BuildingNumber,
			District:       p.District,
			Street:         p.Street,
			PostalCode:     p.PostalCode,
		})
	}

	for _, t := range dto.Tenants {
		set.Tenants = append(set.Tenants, tenant.Tenant{
			ID:         t.ID,
			Name:       t.Name,
			NationalID: t.NationalID,
			RentAmount: t.RentAmount,
			StartDate:  t.StartDate,
			EndDate:    t.EndDate,
			UnitID:     t.UnitID,
		})
	}

	for _, t := range dto.Transactions {
		typ := transaction.Type(t.Type)
		if typ != transaction.TypeRevenue && typ != transaction.TypeExpense {
			return Set{}, fmt.Errorf("transaction %d: unknown type %q", t.ID, t.Type)
		}

		set.Transactions = append(set.Transactions, transaction.Transaction{
			ID:          t.ID,
			Type:        typ,
			Category:    t.Category,
			Amount:      t.Amount,
			Date:        t.Date,
			Description: t.Description,
			PropertyID:  t.PropertyID,
			UnitID:      t.UnitID,
		})
	}

	for _, r := range dto.Reminders {
		set.Reminders = append(set.Reminders, reminder.Reminder{
			ID:           r.ID,
			TenantName:   r.TenantName,
			UnitName:     r.UnitName,
			PropertyName: r.PropertyName,
			RentAmount:   r.RentAmount,
			DueDate:      r.DueDate,
		})
	}

	for _, n := range dto.Notes {
		createdAt, err := parseTime(n.CreatedAt)
		if err != nil {
			return Set{}, fmt.Errorf("note %d: %w", n.ID, err)
		}

		color := note.Color(n.Color)
		switch {
		case color == "":
			color = note.ColorYellow
		case !slices.Contains(note.Colors, color):
			return Set{}, fmt.Errorf("note %d: unknown color %q", n.ID, n.Color)
		}

		set.Notes = append(set.Notes, note.Note{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			Color:     color,
			CreatedAt: createdAt,
		})
	}

	if err := set.checkKeys(); err != nil {
		return Set{}, err
	}

	return set, nil
}

func (s Set) checkKeys() error {
	return errors.Join(
		uniqueKeys("property", s.Properties),
		uniqueKeys("tenant", s.Tenants),
		uniqueKeys("transaction", s.Transactions),
		uniqueKeys("reminder", s.Reminders),
		uniqueKeys("note", s.Notes),
	)
}

// uniqueKeys rejects a collection in which two records share an id.
func uniqueKeys[T collection.Entity[T]](kind string, items []T) error {
	seen := make(map[int64]struct{}, len(items))

	for _, item := range items {
		if _, dup := seen[item.Key()]; dup {
			return fmt.Errorf("%s %d: duplicate id", kind, item.Key())
		}

		seen[item.Key()] = struct{}{}
	}

	return nil
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse created at %q: %w", s, err)
	}

	return t, nil
}
