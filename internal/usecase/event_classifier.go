package usecase

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/domain/entities"
)

// DiscardReason tags a delivery that needs no action. It is echoed back to the
// provider in the `type` field of the 200 envelope.
type DiscardReason string

const (
	DiscardStatusUpdate     DiscardReason = "status_update"
	DiscardContactsSync     DiscardReason = "contacts_sync"
	DiscardNoMessages       DiscardReason = "no_messages"
	DiscardEchoMessage      DiscardReason = "echo_message"
	DiscardSystemMessage    DiscardReason = "system_message"
	DiscardNonTextMessage   DiscardReason = "non_text_message"
	DiscardEmptyText        DiscardReason = "empty_text"
	DiscardInvalidSender    DiscardReason = "invalid_sender"
	DiscardStaleMessage     DiscardReason = "stale_message"
	DiscardAutomatedContent DiscardReason = "automated_content"
	DiscardBlankText        DiscardReason = "blank_text"
	DiscardInvalidPayload   DiscardReason = "invalid_payload"
)

const (
	defaultMaxMessageAge = 5 * time.Minute
	minSenderLength      = 10
)

var automatedMarkers = []string{"template", "system", "automated"}

// Classification is either an actionable event or a discard reason, never both.
type Classification struct {
	Event   *entities.InboundEvent
	Discard DiscardReason
}

func (c Classification) Actionable() bool {
	return c.Event != nil && c.Discard == ""
}

func discard(reason DiscardReason) Classification {
	return Classification{Discard: reason}
}

// EventClassifier filters provider deliveries down to actionable text messages.
type EventClassifier struct {
	ownIdentities []string
	maxAge        time.Duration
	now           func() time.Time
}

func NewEventClassifier(cfg config.WhatsAppConfig) *EventClassifier {
	maxAge := cfg.MaxMessageAge
	if maxAge <= 0 {
		maxAge = defaultMaxMessageAge
	}
	var own []string
	for _, id := range []string{cfg.PhoneNumberID, cfg.BusinessPhone} {
		if d := NormalizePhone(id); d != "" {
			own = append(own, d)
		}
	}
	return &EventClassifier{
		ownIdentities: own,
		maxAge:        maxAge,
		now:           time.Now,
	}
}

// Classify applies the discard rules in order. Only the first message of
// entry[0].changes[0] is considered.
func (c *EventClassifier) Classify(payload entities.WebhookPayload, raw json.RawMessage) Classification {
	change, _ := payload.FirstChange()
	value := change.Value

	if len(value.Statuses) > 0 {
		return discard(DiscardStatusUpdate)
	}
	if len(value.Contacts) > 0 && len(value.Messages) == 0 {
		return discard(DiscardContactsSync)
	}
	if len(value.Messages) == 0 {
		return discard(DiscardNoMessages)
	}

	msg := value.Messages[0]
	if msg.FromMe || msg.Echo || change.Field == entities.EchoChangeField {
		return discard(DiscardEchoMessage)
	}
	if c.isOwnIdentity(msg.From, value.Metadata) {
		return discard(DiscardSystemMessage)
	}
	if msg.Type != string(entities.MessageTypeText) {
		return discard(DiscardNonTextMessage)
	}
	if msg.Text == nil || msg.Text.Body == "" {
		return discard(DiscardEmptyText)
	}
	if len(msg.From) < minSenderLength {
		return discard(DiscardInvalidSender)
	}

	ts := parseProviderTimestamp(msg.Timestamp)
	if !ts.IsZero() && c.now().Sub(ts) > c.maxAge {
		return discard(DiscardStaleMessage)
	}

	lowered := strings.ToLower(msg.Text.Body)
	for _, marker := range automatedMarkers {
		if strings.Contains(lowered, marker) {
			return discard(DiscardAutomatedContent)
		}
	}

	text := strings.TrimSpace(msg.Text.Body)
	if text == "" {
		return discard(DiscardBlankText)
	}

	return Classification{Event: &entities.InboundEvent{
		Kind:        entities.EventKindMessage,
		Sender:      msg.From,
		MessageID:   msg.ID,
		MessageType: entities.MessageTypeText,
		Text:        text,
		Timestamp:   ts,
		Raw:         raw,
	}}
}

func (c *EventClassifier) isOwnIdentity(sender string, meta entities.WebhookMetadata) bool {
	s := NormalizePhone(sender)
	if s == "" {
		return false
	}
	if d := NormalizePhone(meta.DisplayPhoneNumber); d != "" && d == s {
		return true
	}
	if meta.PhoneNumberID != "" && NormalizePhone(meta.PhoneNumberID) == s {
		return true
	}
	for _, own := range c.ownIdentities {
		if own == s {
			return true
		}
	}
	return false
}

// parseProviderTimestamp reads unix seconds; anything else yields the zero time.
func parseProviderTimestamp(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || secs <= 0 {
		return time.Time{}
	}
	return time.Unix(secs, 0).UTC()
}
