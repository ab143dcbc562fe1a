// Package report derives dashboard KPIs from the live collections.
package report

import (
	"cmp"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/aqari/internal/property"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

type CategoryTotal struct {
	Category string
	Revenue  decimal.Decimal
	Expense  decimal.Decimal
}

type MonthTotal struct {
	Month string // YYYY-MM
	Net   decimal.Decimal
}

type Summary struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	OccupancyRate int
	PropertyCount int
	UnitCount     int
	Categories    []CategoryTotal // in order of first appearance
	Months        []MonthTotal    // oldest first
}

func Summarize(txs []transaction.Transaction, props []property.Property) Summary {
	s := Summary{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		PropertyCount: len(props),
	}

	categories := make(map[string]int)
	months := make(map[string]decimal.Decimal)

	for _, tx := range txs {
		i, ok := categories[tx.Category]
		if !ok {
			i = len(s.Categories)
			categories[tx.Category] = i
			s.Categories = append(s.Categories, CategoryTotal{
				Category: tx.Category,
				Revenue:  decimal.Zero,
				Expense:  decimal.Zero,
			})
		}

		switch tx.Type {
		case transaction.TypeRevenue:
			s.TotalRevenue = s.TotalRevenue.Add(tx.Amount)
			s.Categories[i].Revenue = s.Categories[i].Revenue.Add(tx.Amount)
		case transaction.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			s.Categories[i].Expense = s.Categories[i].Expense.Add(tx.Amount)
		}

		if len(tx.Date) >= 7 {
			month := tx.Date[:7]
			months[month] = months[month].Add(tx.Signed())
		}
	}

	s.NetProfit = s.TotalRevenue.Sub(s.TotalExpenses)

	for month, net := range months {
		s.Months = append(s.Months, MonthTotal{Month: month, Net: net})
	}

	slices.SortFunc(s.Months, func(a, b MonthTotal) int {
		return cmp.Compare(a.Month, b.Month)
	})

	if len(props) > 0 {
		var total int
		for _, p := range props {
			total += p.OccupancyRate
			s.UnitCount += p.UnitCount
		}

		s.OccupancyRate = int(math.Round(float64(total) / float64(len(props))))
	}

	return s
}
