package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

// ReplyComposer turns an authorized intent into reply text. Deterministic
// replies are built from store data; everything else goes to the assistant and
// then to a static per-role fallback.
type ReplyComposer struct {
	commissions interfaces.ICommissionRepository
	assistant   interfaces.IAIAssistant
	contexts    *RoleContextBuilder
}

func NewReplyComposer(commissions interfaces.ICommissionRepository, assistant interfaces.IAIAssistant, contexts *RoleContextBuilder) *ReplyComposer {
	return &ReplyComposer{commissions: commissions, assistant: assistant, contexts: contexts}
}

// CommissionReport never touches the assistant.
func (c *ReplyComposer) CommissionReport(ctx context.Context, principal entities.Principal) string {
	if c.commissions == nil {
		log.Printf("[webhook][composer] commission repository not configured")
		return MsgLookupUnavailable
	}
	records, err := c.commissions.ListByTechnician(ctx, principal.TenantID, principal.TechnicianID)
	if err != nil {
		log.Printf("[webhook][composer] commission lookup failed principal_id=%s err=%v", principal.ID, err)
		return MsgLookupUnavailable
	}
	totals := entities.SummarizeCommissions(records)
	log.Printf("[webhook][composer] commission report principal_id=%s records=%d", principal.ID, totals.Count)
	return FormatCommissionReport(principal.DisplayName, totals)
}

func FormatCommissionReport(displayName string, t entities.CommissionTotals) string {
	var b strings.Builder
	b.WriteString("💰 *Resumo de comissões*")
	if name := strings.TrimSpace(displayName); name != "" {
		b.WriteString(" - " + name)
	}
	b.WriteString("\n\n")
	if t.Count == 0 {
		b.WriteString("Nenhuma comissão registrada até o momento.")
		return b.String()
	}
	fmt.Fprintf(&b, "✅ Pagas: %s\n", formatBRL(t.Paid))
	fmt.Fprintf(&b, "⏳ Pendentes: %s\n", formatBRL(t.Pending))
	fmt.Fprintf(&b, "📊 Total: %s\n", formatBRL(t.Total))
	fmt.Fprintf(&b, "\nRegistros: %d", t.Count)
	if t.LastPaidAt != nil {
		fmt.Fprintf(&b, "\nÚltimo pagamento: %s", t.LastPaidAt.Format("02/01/2006"))
	}
	return b.String()
}

// OrderPassword must only be called after a positive ownership check.
func (c *ReplyComposer) OrderPassword(order entities.ServiceOrderSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔑 *OS #%s*\n", order.OrderNumber)
	if order.AccessPassword == "" {
		b.WriteString("Esta OS não possui senha de acesso cadastrada.\n")
	} else {
		fmt.Fprintf(&b, "Senha de acesso: *%s*\n", order.AccessPassword)
	}
	if order.Device != "" {
		fmt.Fprintf(&b, "Aparelho: %s\n", order.Device)
	}
	fmt.Fprintf(&b, "Status: %s", order.StatusLabel())
	return b.String()
}

// Fallback asks the assistant with a role-scoped context. order is non-nil
// only for an OS generic query that passed the ownership check.
func (c *ReplyComposer) Fallback(ctx context.Context, principal entities.Principal, text string, order *entities.ServiceOrderSummary) string {
	if c.assistant == nil || !c.assistant.Available() {
		assistantRequestsCounter.WithLabelValues("unavailable").Inc()
		return StaticFallback(principal.Role)
	}

	rc := c.contexts.Build(ctx, principal)
	rc.Order = order

	answer, err := c.assistant.Ask(ctx, text, principal.DisplayName, rc)
	if err != nil {
		assistantRequestsCounter.WithLabelValues("error").Inc()
		log.Printf("[webhook][composer] assistant failed principal_id=%s err=%v", principal.ID, err)
		return StaticFallback(principal.Role)
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		assistantRequestsCounter.WithLabelValues("empty").Inc()
		log.Printf("[webhook][composer] assistant returned empty answer principal_id=%s", principal.ID)
		return StaticFallback(principal.Role)
	}
	assistantRequestsCounter.WithLabelValues("answered").Inc()
	return answer
}

// StaticFallback is the last tier: command list for the role plus a hint of
// what free-form questions are supported.
func StaticFallback(role entities.Role) string {
	var b strings.Builder
	b.WriteString("🤖 Comando não reconhecido.\n\n")
	b.WriteString("*Comandos disponíveis:*\n")
	if role == entities.RoleTechnician {
		b.WriteString("• " + CommissionCommand + " - resumo das suas comissões\n")
		b.WriteString("• senha da OS 123 - senha de acesso de uma OS sua\n")
		b.WriteString("• OS 123 - dúvidas sobre uma OS sua\n")
	}
	b.WriteString("• Perguntas em texto livre sobre o seu dia a dia na loja\n")
	b.WriteString("\n💡 " + roleHint(role))
	return b.String()
}

func roleHint(role entities.Role) string {
	switch role {
	case entities.RoleTechnician:
		return "Pergunte, por exemplo, quais OS estão abertas com você ou quanto tem de comissão pendente."
	case entities.RoleFinance:
		return "Pergunte, por exemplo, quais contas vencem esta semana ou o total em aberto."
	case entities.RoleFrontDesk:
		return "Pergunte, por exemplo, quantas OS estão abertas ou sobre clientes recentes."
	case entities.RoleAdmin:
		return "Pergunte, por exemplo, pelos indicadores gerais da loja."
	default:
		return "Seu perfil não possui consultas liberadas. Fale com o administrador."
	}
}
