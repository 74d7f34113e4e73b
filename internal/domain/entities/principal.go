package entities

import "strings"

// Role is the closed set of directory roles.
type Role string

const (
	RoleTechnician Role = "tecnico"
	RoleFinance    Role = "financeiro"
	RoleFrontDesk  Role = "atendente"
	RoleAdmin      Role = "admin"
	RoleUnknown    Role = "desconhecido"
)

// ParseRole maps directory values (including a few legacy spellings) to a Role.
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tecnico", "técnico", "technician":
		return RoleTechnician
	case "financeiro", "finance":
		return RoleFinance
	case "atendente", "recepcao", "recepção", "front_desk", "front-desk":
		return RoleFrontDesk
	case "admin", "administrador":
		return RoleAdmin
	default:
		return RoleUnknown
	}
}

// Principal is the directory identity behind a sender phone number.
//
// Storage model (DynamoDB):
//   - PK: phone (digits only)
type Principal struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Phone        string `json:"phone"`
	Role         Role   `json:"role"`
	TenantID     string `json:"tenant_id"`
	TechnicianID string `json:"technician_id,omitempty"`
}

func (p Principal) IsTechnician() bool {
	return p.Role == RoleTechnician
}

// OwnsOrder is the ownership check. Only technicians with a technician id can
// ever own an order.
func (p Principal) OwnsOrder(o ServiceOrderSummary) bool {
	if !p.IsTechnician() || p.TechnicianID == "" {
		return false
	}
	if o.TenantID != "" && o.TenantID != p.TenantID {
		return false
	}
	return o.AssignedTechnicianID == p.TechnicianID
}
