package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

type ICommissionRepository interface {
	ListByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.CommissionRecord, error)
	ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.CommissionRecord, error)
}
