package view

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aqari/internal/app"
	"github.com/MrJamesThe3rd/aqari/internal/listing"
	"github.com/MrJamesThe3rd/aqari/internal/reminder"
	"github.com/MrJamesThe3rd/aqari/internal/report"
	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

const (
	dashboardReminders = 3
	dashboardRecent    = 5
)

// DashboardModel shows the KPI cards, upcoming rent and the latest
// transactions.
type DashboardModel struct {
	app *app.App

	summary   report.Summary
	reminders []reminder.Reminder
	recent    []transaction.Transaction
}

func NewDashboardModel(a *app.App) DashboardModel {
	m := DashboardModel{app: a}
	m.refresh()

	return m
}

func (m DashboardModel) Title() string     { return "لوحة التحكم" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return nil
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ToastsChangedMsg:
		m.refresh()
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.refresh()
		}
	}

	return m, nil
}

func (m *DashboardModel) refresh() {
	ctx := context.Background()
	tag := m.app.Collation()

	m.summary = m.app.Summary(ctx)
	m.reminders = reminder.View(tag).Apply(m.app.Reminders.List(ctx), "", listing.Spec{Key: "dueDate", Direction: listing.Asc})
	m.recent = transaction.View(tag).Apply(m.app.Transactions.List(ctx), "", listing.Spec{Key: "date", Direction: listing.Desc})

	m.reminders = m.reminders[:min(len(m.reminders), dashboardReminders)]
	m.recent = m.recent[:min(len(m.recent), dashboardRecent)]
}

func (m DashboardModel) View() string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("إجمالي الإيرادات", FormatAmount(m.summary.TotalRevenue)),
		card("إجمالي المصروفات", FormatAmount(m.summary.TotalExpenses)),
		card("صافي الربح", FormatAmount(m.summary.NetProfit)),
		card("نسبة الإشغال", FormatPercent(m.summary.OccupancyRate)),
		card("العقارات", FormatCount(m.summary.PropertyCount)),
	)

	var reminders strings.Builder
	for _, r := range m.reminders {
		fmt.Fprintf(&reminders, "%s  %s - %s  %s\n", r.DueDate, r.TenantName, r.UnitName, FormatAmount(r.RentAmount))
	}

	if len(m.reminders) == 0 {
		reminders.WriteString(mutedStyle("لا توجد مدفوعات قادمة"))
	}

	var recent strings.Builder
	for _, tx := range m.recent {
		fmt.Fprintf(&recent, "%s  %-14s %s\n", tx.Date, tx.Category, FormatAmount(tx.Signed()))
	}

	var months strings.Builder
	for _, mt := range m.summary.Months {
		fmt.Fprintf(&months, "%s  %s\n", mt.Month, FormatAmount(mt.Net))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		cards,
		lipgloss.JoinHorizontal(lipgloss.Top,
			panel("المدفوعات القادمة", reminders.String()),
			panel("أحدث المعاملات", recent.String()),
			panel("صافي شهري", months.String()),
		),
	))
}

func card(title, value string) string {
	return lipgloss.NewStyle().
		Padding(0, 2).
		MarginRight(1).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(palette.Border).
		Render(mutedStyle(title) + "\n" + activeStyle(value))
}
