package entities

import "time"

// Payable is an accounts-payable entry (contas a pagar), read for finance context.
type Payable struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Description string    `json:"description"`
	Supplier    string    `json:"supplier,omitempty"`
	Amount      float64   `json:"amount"`
	DueDate     time.Time `json:"due_date"`
	Paid        bool      `json:"paid"`
}

func (p Payable) IsOverdue(now time.Time) bool {
	return !p.Paid && !p.DueDate.IsZero() && p.DueDate.Before(now)
}
