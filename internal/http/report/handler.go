package report

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/aqari/internal/http/respond"
	"github.com/MrJamesThe3rd/aqari/internal/report"
)

type Source interface {
	Summary(ctx context.Context) report.Summary
}

type Handler struct {
	src Source
}

func NewHandler(src Source) *Handler {
	return &Handler{src: src}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/summary", h.summary)
}

type categoryResponse struct {
	Category string          `json:"category"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expense  decimal.Decimal `json:"expense"`
}

type monthResponse struct {
	Month string          `json:"month"`
	Net   decimal.Decimal `json:"net"`
}

type summaryResponse struct {
	TotalRevenue  decimal.Decimal    `json:"totalRevenue"`
	TotalExpenses decimal.Decimal    `json:"totalExpenses"`
	NetProfit     decimal.Decimal    `json:"netProfit"`
	OccupancyRate int                `json:"occupancyRate"`
	PropertyCount int                `json:"propertyCount"`
	UnitCount     int                `json:"unitCount"`
	Categories    []categoryResponse `json:"categories"`
	Months        []monthResponse    `json:"months"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	s := h.src.Summary(r.Context())

	resp := summaryResponse{
		TotalRevenue:  s.TotalRevenue,
		TotalExpenses: s.TotalExpenses,
		NetProfit:     s.NetProfit,
		OccupancyRate: s.OccupancyRate,
		PropertyCount: s.PropertyCount,
		UnitCount:     s.UnitCount,
		Categories:    make([]categoryResponse, len(s.Categories)),
		Months:        make([]monthResponse, len(s.Months)),
	}

	for i, c := range s.Categories {
		resp.Categories[i] = categoryResponse{Category: c.Category, Revenue: c.Revenue, Expense: c.Expense}
	}

	for i, m := range s.Months {
		resp.Months[i] = monthResponse{Month: m.Month, Net: m.Net}
	}

	respond.JSON(w, http.StatusOK, resp)
}
