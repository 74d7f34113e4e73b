package usecase

import (
	"regexp"
	"strings"

	"mecanica_gateway/internal/domain/entities"
)

// CommissionCommand is the reserved command token for the commission report.
const CommissionCommand = "/comissoes"

var (
	passwordPattern = regexp.MustCompile(`(?i)(senha|password|c[oó]digo\s+de\s+acesso)`)
	orderPattern    = regexp.MustCompile(`(?i)(\bos(\b|\d)|\bo\.s\.?|ordem\s+de\s+servi[cç]o)`)
	digitRunPattern = regexp.MustCompile(`\d+`)
)

const (
	minOrderNumberLen = 2
	maxOrderNumberLen = 5
)

// IntentRouter maps message text to an Intent. It is pure: no identity, no I/O.
type IntentRouter struct{}

func NewIntentRouter() *IntentRouter {
	return &IntentRouter{}
}

func (r *IntentRouter) Route(text string) entities.Intent {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(strings.ToLower(text), CommissionCommand) {
		return entities.CommissionReportIntent()
	}

	isPassword := passwordPattern.MatchString(text)
	isOrder := orderPattern.MatchString(text)

	switch {
	case isPassword && isOrder:
		n, ok := extractOrderNumber(text)
		if !ok {
			return entities.Intent{Kind: entities.IntentUnrecognized, Clarification: MsgOrderNumberMissing}
		}
		return entities.OSPasswordQueryIntent(n)
	case isOrder:
		n, ok := extractOrderNumber(text)
		if !ok {
			return entities.UnrecognizedIntent()
		}
		return entities.OSGenericQueryIntent(n)
	}
	return entities.UnrecognizedIntent()
}

// extractOrderNumber prefers the first digit run of 2 to 5 digits and falls
// back to the first run. When several runs qualify the first one wins.
func extractOrderNumber(text string) (string, bool) {
	runs := digitRunPattern.FindAllString(text, -1)
	if len(runs) == 0 {
		return "", false
	}
	for _, run := range runs {
		if len(run) >= minOrderNumberLen && len(run) <= maxOrderNumberLen {
			return run, true
		}
	}
	return runs[0], true
}
