package entities

import "time"

// ServiceOrderStatus mirrors the status column of the OS screens.
type ServiceOrderStatus string

const (
	ServiceOrderStatusAberta      ServiceOrderStatus = "aberta"
	ServiceOrderStatusEmAndamento ServiceOrderStatus = "em_andamento"
	ServiceOrderStatusAguardando  ServiceOrderStatus = "aguardando_peca"
	ServiceOrderStatusPronta      ServiceOrderStatus = "pronta"
	ServiceOrderStatusEntregue    ServiceOrderStatus = "entregue"
	ServiceOrderStatusCancelada   ServiceOrderStatus = "cancelada"
)

// ServiceOrderSummary is the minimal projection of an OS the gateway reads.
//
// Storage model (DynamoDB):
//   - PK: tenant_id, SK: order_number
//   - GSI1 (technician_id-index): technician_id
//
// AccessPassword is only ever sent to the assigned technician.
type ServiceOrderSummary struct {
	OrderNumber          string             `json:"order_number"`
	TenantID             string             `json:"tenant_id"`
	AssignedTechnicianID string             `json:"technician_id"`
	AccessPassword       string             `json:"-"`
	Status               ServiceOrderStatus `json:"status"`
	Device               string             `json:"device,omitempty"`
	ClientName           string             `json:"client_name,omitempty"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

// IsOpen is false once the order was delivered or cancelled.
func (o ServiceOrderSummary) IsOpen() bool {
	switch o.Status {
	case ServiceOrderStatusEntregue, ServiceOrderStatusCancelada:
		return false
	}
	return true
}

// StatusLabel is the human label used in replies.
func (o ServiceOrderSummary) StatusLabel() string {
	switch o.Status {
	case ServiceOrderStatusAberta:
		return "Aberta"
	case ServiceOrderStatusEmAndamento:
		return "Em andamento"
	case ServiceOrderStatusAguardando:
		return "Aguardando peça"
	case ServiceOrderStatusPronta:
		return "Pronta para retirada"
	case ServiceOrderStatusEntregue:
		return "Entregue"
	case ServiceOrderStatusCancelada:
		return "Cancelada"
	case "":
		return "Sem status"
	default:
		return string(o.Status)
	}
}
