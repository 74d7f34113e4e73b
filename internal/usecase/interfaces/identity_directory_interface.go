package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

// IIdentityDirectory resolves a principal by canonical (digits-only) phone.
//
// A missing principal is reported as a zero-value Principal (empty ID) and a nil
// error, the same convention the repositories use for "not found".
type IIdentityDirectory interface {
	FindByPhone(ctx context.Context, phone string) (entities.Principal, error)
}
