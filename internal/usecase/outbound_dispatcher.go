package usecase

import (
	"context"
	"log"
	"strings"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

const defaultCountryPrefix = "55"

// DeliveryResult reports what happened to the single outbound send.
type DeliveryResult struct {
	Delivered         bool
	To                string
	ProviderMessageID string
}

// OutboundDispatcher normalizes the destination and hands the reply to the
// provider. Failures are logged and counted, never returned.
type OutboundDispatcher struct {
	provider      interfaces.IMessagingProvider
	countryPrefix string
}

func NewOutboundDispatcher(provider interfaces.IMessagingProvider, countryPrefix string) *OutboundDispatcher {
	countryPrefix = NormalizePhone(countryPrefix)
	if countryPrefix == "" {
		countryPrefix = defaultCountryPrefix
	}
	return &OutboundDispatcher{provider: provider, countryPrefix: countryPrefix}
}

// NormalizeDestination strips non-digits and prepends the country prefix when
// it is not already there.
func (d *OutboundDispatcher) NormalizeDestination(address string) string {
	digits := NormalizePhone(address)
	if digits == "" || strings.HasPrefix(digits, d.countryPrefix) {
		return digits
	}
	return d.countryPrefix + digits
}

func (d *OutboundDispatcher) Dispatch(ctx context.Context, reply entities.OutboundReply) DeliveryResult {
	to := d.NormalizeDestination(reply.To)
	res := DeliveryResult{To: to}
	if to == "" || strings.TrimSpace(reply.Body) == "" {
		log.Printf("[webhook][dispatch] nothing to send to=%s body_len=%d", maskPhone(to), len(reply.Body))
		repliesSentCounter.WithLabelValues("failed").Inc()
		return res
	}
	if d.provider == nil {
		log.Printf("[webhook][dispatch] messaging provider not configured to=%s", maskPhone(to))
		repliesSentCounter.WithLabelValues("failed").Inc()
		return res
	}

	id, err := d.provider.SendText(ctx, to, reply.Body)
	if err != nil {
		log.Printf("[webhook][dispatch] delivery failed to=%s err=%v", maskPhone(to), err)
		repliesSentCounter.WithLabelValues("failed").Inc()
		return res
	}
	log.Printf("[webhook][dispatch] delivered to=%s provider_message_id=%s", maskPhone(to), id)
	repliesSentCounter.WithLabelValues("delivered").Inc()
	res.Delivered = true
	res.ProviderMessageID = id
	return res
}
