package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

// IServiceOrderRepository is the read side of the OS table.
//
// GetByNumber is always tenant scoped; a missing order returns a zero value.
type IServiceOrderRepository interface {
	GetByNumber(ctx context.Context, tenantID, orderNumber string) (entities.ServiceOrderSummary, error)
	ListOpenByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.ServiceOrderSummary, error)
	ListOpenByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrderSummary, error)
}
