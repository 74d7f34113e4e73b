package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

// PrincipalRepository is the identity directory over the profiles table.
type PrincipalRepository struct {
	db    Querier
	table string
}

var _ interfaces.IIdentityDirectory = (*PrincipalRepository)(nil)

func NewPrincipalRepository(db Querier, tables Tables) *PrincipalRepository {
	return &PrincipalRepository{db: db, table: table(tables.Profiles, "profiles")}
}

func (r *PrincipalRepository) FindByPhone(ctx context.Context, phone string) (entities.Principal, error) {
	query := fmt.Sprintf(`SELECT id, COALESCE(display_name, ''), phone, COALESCE(role, ''), tenant_id, COALESCE(technician_id, '')
		FROM %s WHERE phone = $1 AND COALESCE(active, TRUE)`, r.table)

	var p entities.Principal
	var role string
	err := r.db.QueryRow(ctx, query, phone).Scan(&p.ID, &p.DisplayName, &p.Phone, &role, &p.TenantID, &p.TechnicianID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Principal{}, nil
		}
		return entities.Principal{}, fmt.Errorf("finding profile by phone: %w", err)
	}
	p.Role = entities.ParseRole(role)
	return p, nil
}

// ServiceOrderRepository reads the service_orders table.
type ServiceOrderRepository struct {
	db    Querier
	table string
}

var _ interfaces.IServiceOrderRepository = (*ServiceOrderRepository)(nil)

func NewServiceOrderRepository(db Querier, tables Tables) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db, table: table(tables.ServiceOrders, "service_orders")}
}

const serviceOrderColumns = `order_number, tenant_id, COALESCE(technician_id, ''), COALESCE(access_password, ''),
	status, COALESCE(device, ''), COALESCE(client_name, ''), updated_at`

const closedStatuses = `('entregue', 'cancelada')`

func scanServiceOrder(row pgx.Row) (entities.ServiceOrderSummary, error) {
	var o entities.ServiceOrderSummary
	var status string
	var updatedAt *time.Time
	if err := row.Scan(&o.OrderNumber, &o.TenantID, &o.AssignedTechnicianID, &o.AccessPassword, &status, &o.Device, &o.ClientName, &updatedAt); err != nil {
		return entities.ServiceOrderSummary{}, err
	}
	o.Status = entities.ServiceOrderStatus(status)
	if updatedAt != nil {
		o.UpdatedAt = updatedAt.UTC()
	}
	return o, nil
}

func (r *ServiceOrderRepository) GetByNumber(ctx context.Context, tenantID, orderNumber string) (entities.ServiceOrderSummary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tenant_id = $1 AND order_number = $2`, serviceOrderColumns, r.table)
	o, err := scanServiceOrder(r.db.QueryRow(ctx, query, tenantID, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ServiceOrderSummary{}, nil
		}
		return entities.ServiceOrderSummary{}, fmt.Errorf("getting service order %s: %w", orderNumber, err)
	}
	return o, nil
}

func (r *ServiceOrderRepository) ListOpenByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.ServiceOrderSummary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE tenant_id = $1 AND technician_id = $2 AND status NOT IN %s
		ORDER BY updated_at DESC NULLS LAST`, serviceOrderColumns, r.table, closedStatuses)
	rows, err := r.db.Query(ctx, query, tenantID, technicianID)
	if err != nil {
		return nil, fmt.Errorf("listing technician orders: %w", err)
	}
	return collect(rows, scanServiceOrder)
}

func (r *ServiceOrderRepository) ListOpenByTenant(ctx context.Context, tenantID string) ([]entities.ServiceOrderSummary, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s
		WHERE tenant_id = $1 AND status NOT IN %s
		ORDER BY updated_at DESC NULLS LAST`, serviceOrderColumns, r.table, closedStatuses)
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing tenant orders: %w", err)
	}
	return collect(rows, scanServiceOrder)
}

// CommissionRepository reads the commissions table.
type CommissionRepository struct {
	db    Querier
	table string
}

var _ interfaces.ICommissionRepository = (*CommissionRepository)(nil)

func NewCommissionRepository(db Querier, tables Tables) *CommissionRepository {
	return &CommissionRepository{db: db, table: table(tables.Commissions, "commissions")}
}

const commissionColumns = `id, tenant_id, technician_id, COALESCE(order_number, ''), amount::float8, paid, paid_at`

func scanCommission(row pgx.Row) (entities.CommissionRecord, error) {
	var c entities.CommissionRecord
	var paidAt *time.Time
	if err := row.Scan(&c.ID, &c.TenantID, &c.TechnicianID, &c.OrderNumber, &c.Amount, &c.Paid, &paidAt); err != nil {
		return entities.CommissionRecord{}, err
	}
	if paidAt != nil {
		t := paidAt.UTC()
		c.PaidAt = &t
	}
	return c, nil
}

func (r *CommissionRepository) ListByTechnician(ctx context.Context, tenantID, technicianID string) ([]entities.CommissionRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tenant_id = $1 AND technician_id = $2`, commissionColumns, r.table)
	rows, err := r.db.Query(ctx, query, tenantID, technicianID)
	if err != nil {
		return nil, fmt.Errorf("listing technician commissions: %w", err)
	}
	return collect(rows, scanCommission)
}

func (r *CommissionRepository) ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.CommissionRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE tenant_id = $1 AND NOT paid`, commissionColumns, r.table)
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing pending commissions: %w", err)
	}
	return collect(rows, scanCommission)
}

// PayableRepository reads the payables table.
type PayableRepository struct {
	db    Querier
	table string
}

var _ interfaces.IPayableRepository = (*PayableRepository)(nil)

func NewPayableRepository(db Querier, tables Tables) *PayableRepository {
	return &PayableRepository{db: db, table: table(tables.Payables, "payables")}
}

func (r *PayableRepository) ListPendingByTenant(ctx context.Context, tenantID string) ([]entities.Payable, error) {
	query := fmt.Sprintf(`SELECT id, tenant_id, description, COALESCE(supplier, ''), amount::float8, due_date, paid
		FROM %s WHERE tenant_id = $1 AND NOT paid ORDER BY due_date`, r.table)
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing pending payables: %w", err)
	}
	return collect(rows, func(row pgx.Row) (entities.Payable, error) {
		var p entities.Payable
		if err := row.Scan(&p.ID, &p.TenantID, &p.Description, &p.Supplier, &p.Amount, &p.DueDate, &p.Paid); err != nil {
			return entities.Payable{}, err
		}
		p.DueDate = p.DueDate.UTC()
		return p, nil
	})
}

// ClientRepository reads the clients table.
type ClientRepository struct {
	db    Querier
	table string
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(db Querier, tables Tables) *ClientRepository {
	return &ClientRepository{db: db, table: table(tables.Clients, "clients")}
}

func (r *ClientRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var n int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE tenant_id = $1`, r.table)
	if err := r.db.QueryRow(ctx, query, tenantID).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting clients: %w", err)
	}
	return n, nil
}

func (r *ClientRepository) ListRecentByTenant(ctx context.Context, tenantID string, limit int) ([]entities.ClientRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT id, tenant_id, name, COALESCE(phone, ''), created_at
		FROM %s WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2`, r.table)
	rows, err := r.db.Query(ctx, query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent clients: %w", err)
	}
	return collect(rows, func(row pgx.Row) (entities.ClientRecord, error) {
		var c entities.ClientRecord
		if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Phone, &c.CreatedAt); err != nil {
			return entities.ClientRecord{}, err
		}
		c.CreatedAt = c.CreatedAt.UTC()
		return c, nil
	})
}
