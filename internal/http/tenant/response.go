package tenant

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/aqari/internal/tenant"
)

type tenantResponse struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	NationalID string          `json:"nationalId"`
	RentAmount decimal.Decimal `json:"rentAmount"`
	StartDate  string          `json:"startDate"`
	EndDate    string          `json:"endDate"`
	UnitID     int64           `json:"unitId"`
}

func toResponse(t tenant.Tenant) tenantResponse {
	return tenantResponse{
		ID:         t.ID,
		Name:       t.Name,
		NationalID: t.NationalID,
		RentAmount: t.RentAmount,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		UnitID:     t.UnitID,
	}
}
