package usecase

import (
	"context"
	"errors"
	"log"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

// ErrUnregisteredSender is terminal for the pipeline: only directory-known
// numbers are processed, whatever the message says.
var ErrUnregisteredSender = errors.New("unregistered sender")

type IdentityResolver struct {
	directory interfaces.IIdentityDirectory
}

func NewIdentityResolver(directory interfaces.IIdentityDirectory) *IdentityResolver {
	return &IdentityResolver{directory: directory}
}

// Resolve looks the sender up on every call; principals are never cached.
func (r *IdentityResolver) Resolve(ctx context.Context, sender string) (entities.Principal, error) {
	phone := NormalizePhone(sender)
	if phone == "" {
		log.Printf("[webhook][identity] empty canonical phone")
		return entities.Principal{}, ErrUnregisteredSender
	}
	if r.directory == nil {
		return entities.Principal{}, errors.New("identity directory not configured")
	}

	p, err := r.directory.FindByPhone(ctx, phone)
	if err != nil {
		log.Printf("[webhook][identity] directory lookup failed phone=%s err=%v", maskPhone(phone), err)
		return entities.Principal{}, err
	}
	if p.ID == "" {
		log.Printf("[webhook][identity] unregistered sender phone=%s", maskPhone(phone))
		return entities.Principal{}, ErrUnregisteredSender
	}
	if p.Role == "" {
		p.Role = entities.RoleUnknown
	}
	log.Printf("[webhook][identity] resolved principal_id=%s role=%s tenant_id=%s", p.ID, p.Role, p.TenantID)
	return p, nil
}

// maskPhone keeps the last four digits for logs.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return "****" + phone[len(phone)-4:]
}
