package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

type IClientRepository interface {
	CountByTenant(ctx context.Context, tenantID string) (int, error)
	ListRecentByTenant(ctx context.Context, tenantID string, limit int) ([]entities.ClientRecord, error)
}
