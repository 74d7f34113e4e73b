package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mecanica_gateway/internal/domain/entities"
	mock_interfaces "mecanica_gateway/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReplyComposer_CommissionReport(t *testing.T) {
	t.Run("totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		paidAt := time.Date(2026, 10, 3, 15, 0, 0, 0, time.UTC)
		commissions.EXPECT().ListByTechnician(gomock.Any(), "t-1", "tec-ana").Return([]entities.CommissionRecord{
			{ID: "1", Amount: 1000, Paid: true, PaidAt: &paidAt},
			{ID: "2", Amount: 234.5},
		}, nil)

		got := NewReplyComposer(commissions, nil, nil).CommissionReport(context.Background(), techAna)
		require.Contains(t, got, "Ana")
		require.Contains(t, got, "✅ Pagas: R$ 1.000,00")
		require.Contains(t, got, "⏳ Pendentes: R$ 234,50")
		require.Contains(t, got, "📊 Total: R$ 1.234,50")
		require.Contains(t, got, "Registros: 2")
		require.Contains(t, got, "03/10/2026")
	})

	t.Run("no records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		commissions.EXPECT().ListByTechnician(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		got := NewReplyComposer(commissions, nil, nil).CommissionReport(context.Background(), techAna)
		require.Contains(t, got, "Nenhuma comissão registrada até o momento.")
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		commissions := mock_interfaces.NewMockICommissionRepository(ctrl)
		commissions.EXPECT().ListByTechnician(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		got := NewReplyComposer(commissions, nil, nil).CommissionReport(context.Background(), techAna)
		require.Equal(t, MsgLookupUnavailable, got)
	})
}

func TestReplyComposer_OrderPassword(t *testing.T) {
	c := NewReplyComposer(nil, nil, nil)

	got := c.OrderPassword(order890)
	require.Contains(t, got, "OS #890")
	require.Contains(t, got, "Senha de acesso: *4455*")
	require.Contains(t, got, "iPhone 12")
	require.Contains(t, got, "Em andamento")

	got = c.OrderPassword(entities.ServiceOrderSummary{OrderNumber: "12"})
	require.Contains(t, got, "não possui senha")
}

func TestReplyComposer_Fallback(t *testing.T) {
	t.Run("assistant answers with role context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assistant := mock_interfaces.NewMockIAIAssistant(ctrl)
		provider := mock_interfaces.NewMockIRoleContextProvider(ctrl)
		provider.EXPECT().Role().Return(entities.RoleFinance)
		provider.EXPECT().Build(gomock.Any(), financeCarla).Return(map[string]any{"pending_payables_count": 3}, nil)

		assistant.EXPECT().Available().Return(true)
		assistant.EXPECT().Ask(gomock.Any(), "o que vence hoje?", "Carla", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, rc entities.RoleContext) (string, error) {
				if rc.Summary["pending_payables_count"] != 3 || rc.Role != entities.RoleFinance {
					t.Fatalf("unexpected context %+v", rc)
				}
				return "  Três contas vencem hoje.  ", nil
			})

		c := NewReplyComposer(nil, assistant, NewRoleContextBuilder(provider))
		got := c.Fallback(context.Background(), financeCarla, "o que vence hoje?", nil)
		require.Equal(t, "Três contas vencem hoje.", got)
	})

	t.Run("owned order is attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assistant := mock_interfaces.NewMockIAIAssistant(ctrl)
		assistant.EXPECT().Available().Return(true)
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, rc entities.RoleContext) (string, error) {
				if rc.Order == nil || rc.Order.OrderNumber != "890" {
					t.Fatalf("expected order in context, got %+v", rc.Order)
				}
				return "Está em andamento.", nil
			})

		c := NewReplyComposer(nil, assistant, NewRoleContextBuilder())
		order := order890
		require.Equal(t, "Está em andamento.", c.Fallback(context.Background(), techAna, "como está a os 890", &order))
	})

	t.Run("assistant error uses static fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assistant := mock_interfaces.NewMockIAIAssistant(ctrl)
		assistant.EXPECT().Available().Return(true)
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("429"))

		got := NewReplyComposer(nil, assistant, nil).Fallback(context.Background(), techAna, "oi", nil)
		require.Equal(t, StaticFallback(entities.RoleTechnician), got)
	})

	t.Run("empty answer uses static fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assistant := mock_interfaces.NewMockIAIAssistant(ctrl)
		assistant.EXPECT().Available().Return(true)
		assistant.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(" \n", nil)

		got := NewReplyComposer(nil, assistant, nil).Fallback(context.Background(), financeCarla, "oi", nil)
		require.Equal(t, StaticFallback(entities.RoleFinance), got)
	})

	t.Run("unavailable assistant is never asked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assistant := mock_interfaces.NewMockIAIAssistant(ctrl)
		assistant.EXPECT().Available().Return(false)

		got := NewReplyComposer(nil, assistant, nil).Fallback(context.Background(), techAna, "oi", nil)
		require.Equal(t, StaticFallback(entities.RoleTechnician), got)
	})
}

func TestStaticFallback(t *testing.T) {
	tech := StaticFallback(entities.RoleTechnician)
	require.True(t, strings.HasPrefix(tech, "🤖 Comando não reconhecido."))
	require.Contains(t, tech, CommissionCommand)

	for _, role := range []entities.Role{entities.RoleFinance, entities.RoleFrontDesk, entities.RoleAdmin, entities.RoleUnknown} {
		got := StaticFallback(role)
		require.NotContains(t, got, CommissionCommand, "role %s", role)
		require.NotEqual(t, tech, got)
	}
	require.Contains(t, StaticFallback(entities.RoleUnknown), "administrador")
}
