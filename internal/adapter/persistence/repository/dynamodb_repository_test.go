package repository

import (
	"context"
	"testing"
	"time"

	"mecanica_gateway/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestPrincipalDynamoRepository_FindByPhone(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ddb, fake := newFakeDynamo(t, `{"Item":{
			"phone":{"S":"5511999990001"},
			"id":{"S":"p-ana"},
			"display_name":{"S":"Ana"},
			"role":{"S":"Técnico"},
			"tenant_id":{"S":"t-1"},
			"technician_id":{"S":"tec-ana"}
		}}`)

		p, err := NewPrincipalDynamoRepository(ddb, "").FindByPhone(context.Background(), "5511999990001")
		require.NoError(t, err)
		require.Equal(t, entities.Principal{
			ID: "p-ana", DisplayName: "Ana", Phone: "5511999990001",
			Role: entities.RoleTechnician, TenantID: "t-1", TechnicianID: "tec-ana",
		}, p)

		require.Len(t, fake.calls, 1)
		require.Equal(t, "GetItem", fake.calls[0].Operation)
		require.Equal(t, "profiles", fake.calls[0].Body["TableName"])
	})

	t.Run("missing", func(t *testing.T) {
		ddb, _ := newFakeDynamo(t, `{}`)
		p, err := NewPrincipalDynamoRepository(ddb, "custom_profiles").FindByPhone(context.Background(), "5511999990001")
		require.NoError(t, err)
		require.Empty(t, p.ID)
	})

	t.Run("inactive", func(t *testing.T) {
		ddb, _ := newFakeDynamo(t, `{"Item":{"phone":{"S":"1"},"id":{"S":"p"},"active":{"BOOL":false}}}`)
		p, err := NewPrincipalDynamoRepository(ddb, "").FindByPhone(context.Background(), "1")
		require.NoError(t, err)
		require.Empty(t, p.ID)
	})
}

func TestServiceOrderDynamoRepository(t *testing.T) {
	t.Run("get by number", func(t *testing.T) {
		ddb, fake := newFakeDynamo(t, `{"Item":{
			"tenant_id":{"S":"t-1"},
			"order_number":{"S":"890"},
			"technician_id":{"S":"tec-ana"},
			"access_password":{"S":"4455"},
			"status":{"S":"pronta"},
			"updated_at":{"S":"2026-10-18T10:00:00Z"}
		}}`)

		o, err := NewServiceOrderDynamoRepository(ddb, "").GetByNumber(context.Background(), "t-1", "890")
		require.NoError(t, err)
		require.Equal(t, "tec-ana", o.AssignedTechnicianID)
		require.Equal(t, "4455", o.AccessPassword)
		require.Equal(t, entities.ServiceOrderStatusPronta, o.Status)
		require.Equal(t, time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC), o.UpdatedAt)

		key := fake.calls[0].Body["Key"].(map[string]any)
		require.Equal(t, map[string]any{"S": "t-1"}, key["tenant_id"])
		require.Equal(t, map[string]any{"S": "890"}, key["order_number"])
	})

	t.Run("empty tenant skips the lookup", func(t *testing.T) {
		ddb, fake := newFakeDynamo(t)
		o, err := NewServiceOrderDynamoRepository(ddb, "").GetByNumber(context.Background(), "", "890")
		require.NoError(t, err)
		require.Empty(t, o.OrderNumber)
		require.Empty(t, fake.calls)
	})

	t.Run("open by technician follows pages and drops closed orders", func(t *testing.T) {
		ddb, fake := newFakeDynamo(t,
			`{"Items":[
				{"tenant_id":{"S":"t-1"},"order_number":{"S":"1"},"status":{"S":"aberta"}},
				{"tenant_id":{"S":"t-1"},"order_number":{"S":"2"},"status":{"S":"entregue"}}
			],"Count":2,"LastEvaluatedKey":{"tenant_id":{"S":"t-1"},"order_number":{"S":"2"},"technician_id":{"S":"tec-ana"}}}`,
			`{"Items":[
				{"tenant_id":{"S":"t-1"},"order_number":{"S":"3"},"status":{"S":"aguardando_peca"}}
			],"Count":1}`,
		)

		orders, err := NewServiceOrderDynamoRepository(ddb, "").ListOpenByTechnician(context.Background(), "t-1", "tec-ana")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		require.Equal(t, "1", orders[0].OrderNumber)
		require.Equal(t, "3", orders[1].OrderNumber)

		require.Len(t, fake.calls, 2)
		require.Equal(t, "Query", fake.calls[0].Operation)
		require.Equal(t, technicianIDIndex, fake.calls[0].Body["IndexName"])
		require.NotNil(t, fake.calls[1].Body["ExclusiveStartKey"])
	})
}

func TestCommissionDynamoRepository_ListByTechnician(t *testing.T) {
	ddb, fake := newFakeDynamo(t, `{"Items":[
		{"id":{"S":"c1"},"tenant_id":{"S":"t-1"},"technician_id":{"S":"tec-ana"},"amount":{"N":"150.5"},"paid":{"BOOL":true},"paid_at":{"S":"2026-10-01T12:00:00Z"}},
		{"id":{"S":"c2"},"tenant_id":{"S":"t-1"},"technician_id":{"S":"tec-ana"},"amount":{"N":"49.5"},"paid":{"BOOL":false}}
	],"Count":2}`)

	records, err := NewCommissionDynamoRepository(ddb, "").ListByTechnician(context.Background(), "t-1", "tec-ana")
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].PaidAt)
	require.Nil(t, records[1].PaidAt)

	totals := entities.SummarizeCommissions(records)
	require.Equal(t, 200.0, totals.Total)
	require.Equal(t, "commissions", fake.calls[0].Body["TableName"])
}

func TestPayableDynamoRepository_ListPendingByTenant(t *testing.T) {
	ddb, fake := newFakeDynamo(t, `{"Items":[
		{"id":{"S":"b1"},"tenant_id":{"S":"t-1"},"description":{"S":"Aluguel"},"amount":{"N":"2000"},"due_date":{"S":"2026-10-25"},"paid":{"BOOL":false}}
	],"Count":1}`)

	items, err := NewPayableDynamoRepository(ddb, "").ListPendingByTenant(context.Background(), "t-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC), items[0].DueDate)
	require.Equal(t, tenantIDIndex, fake.calls[0].Body["IndexName"])
	require.Equal(t, "#paid = :false", fake.calls[0].Body["FilterExpression"])
}

func TestClientDynamoRepository(t *testing.T) {
	t.Run("count sums pages", func(t *testing.T) {
		ddb, fake := newFakeDynamo(t,
			`{"Count":3,"LastEvaluatedKey":{"id":{"S":"x"},"tenant_id":{"S":"t-1"}}}`,
			`{"Count":2}`,
		)
		n, err := NewClientDynamoRepository(ddb, "").CountByTenant(context.Background(), "t-1")
		require.NoError(t, err)
		require.Equal(t, 5, n)
		require.Equal(t, "COUNT", fake.calls[0].Body["Select"])
	})

	t.Run("recent first", func(t *testing.T) {
		ddb, _ := newFakeDynamo(t, `{"Items":[
			{"id":{"S":"1"},"tenant_id":{"S":"t-1"},"name":{"S":"Antigo"},"created_at":{"S":"2025-01-01T00:00:00Z"}},
			{"id":{"S":"2"},"tenant_id":{"S":"t-1"},"name":{"S":"Novo"},"created_at":{"S":"2026-10-01T00:00:00Z"}},
			{"id":{"S":"3"},"tenant_id":{"S":"t-1"},"name":{"S":"Meio"},"created_at":{"S":"2026-01-01T00:00:00Z"}}
		],"Count":3}`)
		clients, err := NewClientDynamoRepository(ddb, "").ListRecentByTenant(context.Background(), "t-1", 2)
		require.NoError(t, err)
		require.Len(t, clients, 2)
		require.Equal(t, "Novo", clients[0].Name)
		require.Equal(t, "Meio", clients[1].Name)
	})
}

func TestParseTimestamp(t *testing.T) {
	require.True(t, parseTimestamp("").IsZero())
	require.True(t, parseTimestamp("ontem").IsZero())
	require.Equal(t, 2026, parseTimestamp("2026-10-19T08:00:00.123-03:00").Year())
}
