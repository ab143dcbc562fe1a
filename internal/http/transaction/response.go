package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/aqari/internal/transaction"
)

// Response is the wire shape of a Transaction.
type Response struct {
	ID          int64            `json:"id"`
	Type        transaction.Type `json:"type"`
	Category    string           `json:"category"`
	Amount      decimal.Decimal  `json:"amount"`
	Date        string           `json:"date"`
	Description string           `json:"description"`
	PropertyID  int64            `json:"propertyId"`
	UnitID      int64            `json:"unitId,omitempty"`
}

func ToResponse(tx transaction.Transaction) Response {
	return Response{
		ID:          tx.ID,
		Type:        tx.Type,
		Category:    tx.Category,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Description: tx.Description,
		PropertyID:  tx.PropertyID,
		UnitID:      tx.UnitID,
	}
}
