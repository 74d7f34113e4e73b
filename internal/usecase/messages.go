package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Fixed replies. Tests compare against these values, keep them stable.
const (
	MsgAccessRestricted      = "🔒 Acesso restrito. Este número não está cadastrado no sistema. Procure o administrador da sua empresa."
	MsgCommandTechnicianOnly = "⚠️ Os comandos por WhatsApp são restritos por perfil. O comando /comissoes é exclusivo para técnicos."
	MsgOrderAccessDenied     = "🔒 Acesso negado. Apenas técnicos podem consultar dados de OS por aqui."
	MsgOrderOwnedByAnother   = "🚫 Esta OS pertence a outro técnico. Você só pode consultar as OS atribuídas a você."
	MsgOrderNumberMissing    = "🔢 Não identifiquei o número da OS. Envie, por exemplo: \"qual a senha da OS 123\"."
	MsgLookupUnavailable     = "⚠️ Não foi possível consultar os dados agora. Tente novamente em alguns minutos."
)

// formatBRL renders 1234.5 as "R$ 1.234,50".
func formatBRL(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	intPart := strconv.FormatInt(cents/100, 10)
	frac := fmt.Sprintf("%02d", cents%100)

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	out := "R$ " + b.String() + "," + frac
	if neg {
		out = "-" + out
	}
	return out
}
