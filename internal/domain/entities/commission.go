package entities

import "time"

// CommissionRecord is a technician commission entry.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
type CommissionRecord struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	TechnicianID string     `json:"technician_id"`
	OrderNumber  string     `json:"order_number,omitempty"`
	Amount       float64    `json:"amount"`
	Paid         bool       `json:"paid"`
	PaidAt       *time.Time `json:"paid_at,omitempty"`
}

// CommissionTotals is the aggregate sent by the commission report.
type CommissionTotals struct {
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	// LastPaidAt is the most recent payment date, nil when nothing was paid.
	LastPaidAt *time.Time `json:"last_paid_at,omitempty"`
}

func SummarizeCommissions(records []CommissionRecord) CommissionTotals {
	var t CommissionTotals
	for _, r := range records {
		t.Count++
		if r.Paid {
			t.Paid += r.Amount
			if r.PaidAt != nil && (t.LastPaidAt == nil || r.PaidAt.After(*t.LastPaidAt)) {
				paidAt := *r.PaidAt
				t.LastPaidAt = &paidAt
			}
		} else {
			t.Pending += r.Amount
		}
	}
	t.Total = t.Paid + t.Pending
	return t
}
