package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

// maxListedItems bounds every list placed in an assistant context.
const maxListedItems = 10

var errContextStoreNotConfigured = errors.New("context store not configured")

// RoleContextBuilder picks the provider registered for the principal role.
// Build never fails: provider errors degrade to an empty context.
type RoleContextBuilder struct {
	providers map[entities.Role]interfaces.IRoleContextProvider
}

func NewRoleContextBuilder(providers ...interfaces.IRoleContextProvider) *RoleContextBuilder {
	b := &RoleContextBuilder{providers: make(map[entities.Role]interfaces.IRoleContextProvider, len(providers))}
	for _, p := range providers {
		if p != nil {
			b.providers[p.Role()] = p
		}
	}
	return b
}

func (b *RoleContextBuilder) Build(ctx context.Context, principal entities.Principal) entities.RoleContext {
	rc := entities.RoleContext{Role: principal.Role, TenantID: principal.TenantID}
	if b == nil {
		return rc
	}
	provider, ok := b.providers[principal.Role]
	if !ok {
		return rc
	}
	summary, err := provider.Build(ctx, principal)
	if err != nil {
		log.Printf("[webhook][context] build failed role=%s principal_id=%s err=%v; continuing with empty context", principal.Role, principal.ID, err)
		return rc
	}
	rc.Summary = summary
	return rc
}

// NewDefaultRoleContextProviders wires one strategy per role.
func NewDefaultRoleContextProviders(
	orders interfaces.IServiceOrderRepository,
	commissions interfaces.ICommissionRepository,
	payables interfaces.IPayableRepository,
	clients interfaces.IClientRepository,
) []interfaces.IRoleContextProvider {
	return []interfaces.IRoleContextProvider{
		&TechnicianContextProvider{orders: orders, commissions: commissions},
		&FinanceContextProvider{payables: payables, now: time.Now},
		&FrontDeskContextProvider{orders: orders, clients: clients},
		&AdminContextProvider{orders: orders, commissions: commissions, payables: payables, clients: clients, now: time.Now},
	}
}

// TechnicianContextProvider: open orders assigned to the technician and commission totals.
type TechnicianContextProvider struct {
	orders      interfaces.IServiceOrderRepository
	commissions interfaces.ICommissionRepository
}

func (p *TechnicianContextProvider) Role() entities.Role { return entities.RoleTechnician }

func (p *TechnicianContextProvider) Build(ctx context.Context, principal entities.Principal) (map[string]any, error) {
	if p.orders == nil || p.commissions == nil {
		return nil, errContextStoreNotConfigured
	}
	orders, err := p.orders.ListOpenByTechnician(ctx, principal.TenantID, principal.TechnicianID)
	if err != nil {
		return nil, err
	}
	records, err := p.commissions.ListByTechnician(ctx, principal.TenantID, principal.TechnicianID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"open_orders_count": len(orders),
		"open_orders":       orderDigests(orders),
		"commissions":       entities.SummarizeCommissions(records),
	}, nil
}

// FinanceContextProvider: pending payables, overdue first.
type FinanceContextProvider struct {
	payables interfaces.IPayableRepository
	now      func() time.Time
}

func (p *FinanceContextProvider) Role() entities.Role { return entities.RoleFinance }

func (p *FinanceContextProvider) Build(ctx context.Context, principal entities.Principal) (map[string]any, error) {
	if p.payables == nil {
		return nil, errContextStoreNotConfigured
	}
	items, err := p.payables.ListPendingByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, err
	}
	now := p.now()
	sort.SliceStable(items, func(i, j int) bool { return items[i].DueDate.Before(items[j].DueDate) })

	var total, overdue float64
	overdueCount := 0
	listed := make([]map[string]any, 0, min(len(items), maxListedItems))
	for i, it := range items {
		total += it.Amount
		if it.IsOverdue(now) {
			overdue += it.Amount
			overdueCount++
		}
		if i < maxListedItems {
			listed = append(listed, map[string]any{
				"description": it.Description,
				"supplier":    it.Supplier,
				"amount":      it.Amount,
				"due_date":    it.DueDate.Format("2006-01-02"),
				"overdue":     it.IsOverdue(now),
			})
		}
	}
	return map[string]any{
		"pending_payables_count": len(items),
		"pending_payables_total": total,
		"overdue_count":          overdueCount,
		"overdue_total":          overdue,
		"next_payables":          listed,
	}, nil
}

// FrontDeskContextProvider: open orders of the shop and client base size.
type FrontDeskContextProvider struct {
	orders  interfaces.IServiceOrderRepository
	clients interfaces.IClientRepository
}

func (p *FrontDeskContextProvider) Role() entities.Role { return entities.RoleFrontDesk }

func (p *FrontDeskContextProvider) Build(ctx context.Context, principal entities.Principal) (map[string]any, error) {
	if p.orders == nil || p.clients == nil {
		return nil, errContextStoreNotConfigured
	}
	orders, err := p.orders.ListOpenByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, err
	}
	clientCount, err := p.clients.CountByTenant(ctx, principal.TenantID)
	if err != nil {
		return nil, err
	}
	recent, err := p.clients.ListRecentByTenant(ctx, principal.TenantID, 5)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(recent))
	for _, c := range recent {
		names = append(names, c.Name)
	}
	return map[string]any{
		"open_orders_count": len(orders),
		"open_orders":       orderDigests(orders),
		"clients_count":     clientCount,
		"recent_clients":    names,
	}, nil
}

// AdminContextProvider: aggregate KPIs. The four reads are independent and
// run concurrently; any failure fails the whole context.
type AdminContextProvider struct {
	orders      interfaces.IServiceOrderRepository
	commissions interfaces.ICommissionRepository
	payables    interfaces.IPayableRepository
	clients     interfaces.IClientRepository
	now         func() time.Time
}

func (p *AdminContextProvider) Role() entities.Role { return entities.RoleAdmin }

func (p *AdminContextProvider) Build(ctx context.Context, principal entities.Principal) (map[string]any, error) {
	if p.orders == nil || p.commissions == nil || p.payables == nil || p.clients == nil {
		return nil, errContextStoreNotConfigured
	}
	var (
		orders      []entities.ServiceOrderSummary
		commissions []entities.CommissionRecord
		payables    []entities.Payable
		clientCount int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = p.orders.ListOpenByTenant(gctx, principal.TenantID)
		return err
	})
	g.Go(func() error {
		var err error
		commissions, err = p.commissions.ListPendingByTenant(gctx, principal.TenantID)
		return err
	})
	g.Go(func() error {
		var err error
		payables, err = p.payables.ListPendingByTenant(gctx, principal.TenantID)
		return err
	})
	g.Go(func() error {
		var err error
		clientCount, err = p.clients.CountByTenant(gctx, principal.TenantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byStatus := map[string]int{}
	for _, o := range orders {
		byStatus[o.StatusLabel()]++
	}
	var payablesTotal float64
	overdue := 0
	now := p.now()
	for _, it := range payables {
		payablesTotal += it.Amount
		if it.IsOverdue(now) {
			overdue++
		}
	}
	return map[string]any{
		"open_orders_count":         len(orders),
		"open_orders_by_status":     byStatus,
		"pending_commissions_total": entities.SummarizeCommissions(commissions).Pending,
		"pending_payables_count":    len(payables),
		"pending_payables_total":    payablesTotal,
		"overdue_payables_count":    overdue,
		"clients_count":             clientCount,
	}, nil
}

// orderDigests never includes access passwords.
func orderDigests(orders []entities.ServiceOrderSummary) []map[string]any {
	out := make([]map[string]any, 0, min(len(orders), maxListedItems))
	for i, o := range orders {
		if i >= maxListedItems {
			break
		}
		out = append(out, map[string]any{
			"order_number": o.OrderNumber,
			"status":       o.StatusLabel(),
			"device":       o.Device,
			"client":       o.ClientName,
		})
	}
	return out
}
