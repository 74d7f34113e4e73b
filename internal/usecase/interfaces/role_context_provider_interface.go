package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

// IRoleContextProvider builds the assistant context for one role.
type IRoleContextProvider interface {
	Role() entities.Role
	Build(ctx context.Context, principal entities.Principal) (map[string]any, error)
}
