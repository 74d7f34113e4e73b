package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

type IPayableRepository interface {
	ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.Payable, error)
}
