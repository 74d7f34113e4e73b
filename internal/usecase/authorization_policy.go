package usecase

import (
	"context"
	"log"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

// AuthorizationDecision carries either the denial reply or, for OS queries,
// the order the principal was proven to own.
type AuthorizationDecision struct {
	Allowed bool
	Reply   string
	Order   *entities.ServiceOrderSummary
}

func deny(reply string) AuthorizationDecision {
	return AuthorizationDecision{Reply: reply}
}

// AuthorizationPolicy enforces role and ownership rules per intent. It only
// reads what the rule needs.
type AuthorizationPolicy struct {
	orders interfaces.IServiceOrderRepository
}

func NewAuthorizationPolicy(orders interfaces.IServiceOrderRepository) *AuthorizationPolicy {
	return &AuthorizationPolicy{orders: orders}
}

func (p *AuthorizationPolicy) AuthorizeCommissionReport(principal entities.Principal) AuthorizationDecision {
	if !principal.IsTechnician() {
		log.Printf("[webhook][policy] commission report denied principal_id=%s role=%s", principal.ID, principal.Role)
		return deny(MsgCommandTechnicianOnly)
	}
	return AuthorizationDecision{Allowed: true}
}

// AuthorizeOrderQuery never distinguishes "missing" from "someone else's":
// both get MsgOrderOwnedByAnother.
func (p *AuthorizationPolicy) AuthorizeOrderQuery(ctx context.Context, principal entities.Principal, orderNumber string) AuthorizationDecision {
	if !principal.IsTechnician() {
		log.Printf("[webhook][policy] order query denied by role principal_id=%s role=%s", principal.ID, principal.Role)
		return deny(MsgOrderAccessDenied)
	}
	if p.orders == nil {
		log.Printf("[webhook][policy] service order repository not configured")
		return deny(MsgLookupUnavailable)
	}

	order, err := p.orders.GetByNumber(ctx, principal.TenantID, orderNumber)
	if err != nil {
		log.Printf("[webhook][policy] order lookup failed tenant_id=%s order=%s err=%v", principal.TenantID, orderNumber, err)
		return deny(MsgLookupUnavailable)
	}
	if order.OrderNumber == "" || !principal.OwnsOrder(order) {
		log.Printf("[webhook][policy] ownership denied principal_id=%s order=%s", principal.ID, orderNumber)
		return deny(MsgOrderOwnedByAnother)
	}

	log.Printf("[webhook][policy] ownership confirmed principal_id=%s order=%s", principal.ID, orderNumber)
	return AuthorizationDecision{Allowed: true, Order: &order}
}
