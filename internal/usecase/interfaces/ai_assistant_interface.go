package interfaces

import (
	"context"
	"mecanica_gateway/internal/domain/entities"
)

// IAIAssistant abstracts the generative assistant used for free-form questions.
//
// Ask returns an empty string when the model produced nothing usable; callers
// treat empty and error the same way (static fallback).
type IAIAssistant interface {
	Available() bool
	Ask(ctx context.Context, message, displayName string, roleContext entities.RoleContext) (string, error)
}
