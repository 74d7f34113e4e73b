package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

const (
	OutcomeStatusProcessed = "processed"
	OutcomeStatusIgnored   = "ignored"
	OutcomeStatusError     = "error"

	OutcomeTypeUnregisteredSender = "unregistered_sender"
)

// WebhookOutcome is what the handler reports back to the provider (always with
// HTTP 200) plus what was sent, for logs and tests.
type WebhookOutcome struct {
	Status   string
	Type     string
	Reply    *entities.OutboundReply
	Delivery DeliveryResult
}

// IWebhookUseCase runs one provider delivery through the whole pipeline.
//
// Discards, unknown senders and authorization denials are outcomes, not errors.
// An error means a collaborator failed before a reply could be decided.
type IWebhookUseCase interface {
	ProcessEvent(ctx context.Context, payload entities.WebhookPayload, raw json.RawMessage) (WebhookOutcome, error)
}

type WebhookUseCase struct {
	classifier *EventClassifier
	rates      interfaces.ISenderRateMonitor
	resolver   *IdentityResolver
	router     *IntentRouter
	policy     *AuthorizationPolicy
	composer   *ReplyComposer
	dispatcher *OutboundDispatcher
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	classifier *EventClassifier,
	rates interfaces.ISenderRateMonitor,
	resolver *IdentityResolver,
	router *IntentRouter,
	policy *AuthorizationPolicy,
	composer *ReplyComposer,
	dispatcher *OutboundDispatcher,
) *WebhookUseCase {
	return &WebhookUseCase{
		classifier: classifier,
		rates:      rates,
		resolver:   resolver,
		router:     router,
		policy:     policy,
		composer:   composer,
		dispatcher: dispatcher,
	}
}

func (u *WebhookUseCase) ProcessEvent(ctx context.Context, payload entities.WebhookPayload, raw json.RawMessage) (out WebhookOutcome, err error) {
	started := time.Now()
	reqID := RequestIDFromContext(ctx)
	defer func() {
		status := out.Status
		if err != nil {
			status = OutcomeStatusError
		}
		webhookEventsCounter.WithLabelValues(status, out.Type).Inc()
		webhookProcessingDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	}()

	cls := u.classifier.Classify(payload, raw)
	if !cls.Actionable() {
		log.Printf("[webhook][usecase] discarded request_id=%s reason=%s", reqID, cls.Discard)
		return WebhookOutcome{Status: OutcomeStatusIgnored, Type: string(cls.Discard)}, nil
	}
	ev := cls.Event
	log.Printf("[webhook][usecase] actionable message request_id=%s message_id=%s sender=%s text_len=%d", reqID, ev.MessageID, maskPhone(NormalizePhone(ev.Sender)), len(ev.Text))

	// Bursts are only recorded; the reply never depends on them.
	if u.rates != nil && u.rates.OverLimit(ctx, NormalizePhone(ev.Sender)) {
		senderBurstCounter.Inc()
		log.Printf("[webhook][usecase] sender over rate limit request_id=%s sender=%s", reqID, maskPhone(NormalizePhone(ev.Sender)))
	}

	principal, err := u.resolver.Resolve(ctx, ev.Sender)
	if errors.Is(err, ErrUnregisteredSender) {
		return u.reply(ctx, reqID, ev.Sender, OutcomeTypeUnregisteredSender, MsgAccessRestricted), nil
	}
	if err != nil {
		log.Printf("[webhook][usecase] identity resolution failed request_id=%s err=%v", reqID, err)
		return WebhookOutcome{Type: "identity_lookup"}, fmt.Errorf("resolving sender: %w", err)
	}

	intent := u.router.Route(ev.Text)
	log.Printf("[webhook][usecase] routed request_id=%s principal_id=%s intent=%s order=%s", reqID, principal.ID, intent.Kind, intent.OrderNumber)

	body := u.compose(ctx, principal, intent, ev.Text)
	return u.reply(ctx, reqID, ev.Sender, string(intent.Kind), body), nil
}

func (u *WebhookUseCase) compose(ctx context.Context, principal entities.Principal, intent entities.Intent, text string) string {
	switch intent.Kind {
	case entities.IntentCommissionReport:
		if d := u.policy.AuthorizeCommissionReport(principal); !d.Allowed {
			return d.Reply
		}
		return u.composer.CommissionReport(ctx, principal)

	case entities.IntentOSPasswordQuery, entities.IntentOSGenericQuery:
		d := u.policy.AuthorizeOrderQuery(ctx, principal, intent.OrderNumber)
		if !d.Allowed {
			return d.Reply
		}
		if intent.Kind == entities.IntentOSPasswordQuery {
			return u.composer.OrderPassword(*d.Order)
		}
		// Ownership only lifts the block; the answer itself comes from the fallback.
		return u.composer.Fallback(ctx, principal, text, d.Order)

	default:
		if intent.Clarification != "" {
			return intent.Clarification
		}
		return u.composer.Fallback(ctx, principal, text, nil)
	}
}

func (u *WebhookUseCase) reply(ctx context.Context, reqID, to, outcomeType, body string) WebhookOutcome {
	r := entities.OutboundReply{To: to, Body: body}
	res := u.dispatcher.Dispatch(ctx, r)
	log.Printf("[webhook][usecase] replied request_id=%s type=%s delivered=%t", reqID, outcomeType, res.Delivered)
	return WebhookOutcome{Status: OutcomeStatusProcessed, Type: outcomeType, Reply: &r, Delivery: res}
}

type requestIDKey struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return "-"
}
