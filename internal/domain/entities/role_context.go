package entities

// RoleContext is the opaque blob handed to the AI assistant. Summary is
// role-specific and serialized as JSON; an empty RoleContext is valid.
type RoleContext struct {
	Role     Role           `json:"role"`
	TenantID string         `json:"tenant_id,omitempty"`
	Summary  map[string]any `json:"summary,omitempty"`
	// Order is set when an OS generic query passed the ownership check.
	Order *ServiceOrderSummary `json:"order,omitempty"`
}

func (c RoleContext) IsEmpty() bool {
	return len(c.Summary) == 0 && c.Order == nil
}
