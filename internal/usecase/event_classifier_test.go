package usecase

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestClassifier() *EventClassifier {
	c := NewEventClassifier(config.WhatsAppConfig{
		PhoneNumberID: "109876543210987",
		BusinessPhone: "+55 11 4000-0000",
	})
	c.now = func() time.Time { return fixedNow }
	return c
}

func unixString(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}

func textPayload(from, body string, ts time.Time) entities.WebhookPayload {
	msg := entities.WebhookMessage{
		From: from,
		ID:   "wamid.test",
		Type: "text",
		Text: &entities.WebhookMessageText{Body: body},
	}
	if !ts.IsZero() {
		msg.Timestamp = unixString(ts)
	}
	return payloadWith(entities.WebhookValue{
		MessagingProduct: "whatsapp",
		Metadata:         entities.WebhookMetadata{DisplayPhoneNumber: "15550001111", PhoneNumberID: "109876543210987"},
		Messages:         []entities.WebhookMessage{msg},
	})
}

func payloadWith(v entities.WebhookValue) entities.WebhookPayload {
	return entities.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry:  []entities.WebhookEntry{{ID: "waba", Changes: []entities.WebhookChange{{Field: "messages", Value: v}}}},
	}
}

func TestEventClassifier_Discards(t *testing.T) {
	c := newTestClassifier()
	recent := fixedNow.Add(-time.Minute)

	cases := []struct {
		name    string
		payload func() entities.WebhookPayload
		want    DiscardReason
	}{
		{
			name: "status receipts",
			payload: func() entities.WebhookPayload {
				p := textPayload("5511999998888", "oi", recent)
				p.Entry[0].Changes[0].Value.Statuses = []json.RawMessage{json.RawMessage(`{"status":"read"}`)}
				return p
			},
			want: DiscardStatusUpdate,
		},
		{
			name: "contacts without messages",
			payload: func() entities.WebhookPayload {
				return payloadWith(entities.WebhookValue{Contacts: []entities.WebhookContact{{WaID: "5511999998888"}}})
			},
			want: DiscardContactsSync,
		},
		{
			name:    "empty envelope",
			payload: func() entities.WebhookPayload { return entities.WebhookPayload{} },
			want:    DiscardNoMessages,
		},
		{
			name:    "no messages",
			payload: func() entities.WebhookPayload { return payloadWith(entities.WebhookValue{}) },
			want:    DiscardNoMessages,
		},
		{
			name: "echo flag",
			payload: func() entities.WebhookPayload {
				p := textPayload("5511999998888", "oi", recent)
				p.Entry[0].Changes[0].Value.Messages[0].FromMe = true
				return p
			},
			want: DiscardEchoMessage,
		},
		{
			name: "echo change field",
			payload: func() entities.WebhookPayload {
				p := textPayload("5511999998888", "oi", recent)
				p.Entry[0].Changes[0].Field = entities.EchoChangeField
				return p
			},
			want: DiscardEchoMessage,
		},
		{
			name:    "sender is our business number",
			payload: func() entities.WebhookPayload { return textPayload("551140000000", "oi", recent) },
			want:    DiscardSystemMessage,
		},
		{
			name:    "sender is metadata display number",
			payload: func() entities.WebhookPayload { return textPayload("15550001111", "oi", recent) },
			want:    DiscardSystemMessage,
		},
		{
			name: "non text",
			payload: func() entities.WebhookPayload {
				p := textPayload("5511999998888", "", recent)
				p.Entry[0].Changes[0].Value.Messages[0].Type = "image"
				p.Entry[0].Changes[0].Value.Messages[0].Text = nil
				return p
			},
			want: DiscardNonTextMessage,
		},
		{
			name: "missing text",
			payload: func() entities.WebhookPayload {
				p := textPayload("5511999998888", "", recent)
				p.Entry[0].Changes[0].Value.Messages[0].Text = nil
				return p
			},
			want: DiscardEmptyText,
		},
		{
			name:    "empty text body",
			payload: func() entities.WebhookPayload { return textPayload("5511999998888", "", recent) },
			want:    DiscardEmptyText,
		},
		{
			name:    "short sender",
			payload: func() entities.WebhookPayload { return textPayload("123456789", "oi", recent) },
			want:    DiscardInvalidSender,
		},
		{
			name:    "missing sender",
			payload: func() entities.WebhookPayload { return textPayload("", "oi", recent) },
			want:    DiscardInvalidSender,
		},
		{
			name: "stale",
			payload: func() entities.WebhookPayload {
				return textPayload("5511999998888", "oi", fixedNow.Add(-6*time.Minute))
			},
			want: DiscardStaleMessage,
		},
		{
			name: "template content",
			payload: func() entities.WebhookPayload {
				return textPayload("5511999998888", "Mensagem de TEMPLATE aprovada", recent)
			},
			want: DiscardAutomatedContent,
		},
		{
			name:    "system content",
			payload: func() entities.WebhookPayload { return textPayload("5511999998888", "System notice", recent) },
			want:    DiscardAutomatedContent,
		},
		{
			name: "automated content",
			payload: func() entities.WebhookPayload {
				return textPayload("5511999998888", "this is an automated reply", recent)
			},
			want: DiscardAutomatedContent,
		},
		{
			name:    "blank text",
			payload: func() entities.WebhookPayload { return textPayload("5511999998888", "   \n\t ", recent) },
			want:    DiscardBlankText,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Classify(tc.payload(), nil)
			require.False(t, got.Actionable())
			require.Nil(t, got.Event)
			require.Equal(t, tc.want, got.Discard)
		})
	}
}

func TestEventClassifier_RuleOrder(t *testing.T) {
	c := newTestClassifier()

	// Stale and automated: the staleness rule comes first.
	p := textPayload("5511999998888", "automated", fixedNow.Add(-time.Hour))
	require.Equal(t, DiscardStaleMessage, c.Classify(p, nil).Discard)

	// Statuses win over everything else in the same delivery.
	p = textPayload("123", "", time.Time{})
	p.Entry[0].Changes[0].Value.Statuses = []json.RawMessage{json.RawMessage(`{}`)}
	require.Equal(t, DiscardStatusUpdate, c.Classify(p, nil).Discard)
}

func TestEventClassifier_Actionable(t *testing.T) {
	c := newTestClassifier()
	raw := json.RawMessage(`{"object":"whatsapp_business_account"}`)

	t.Run("recent message", func(t *testing.T) {
		got := c.Classify(textPayload("5511999998888", "  qual a senha da os 890  ", fixedNow.Add(-4*time.Minute)), raw)
		require.True(t, got.Actionable())
		require.Equal(t, "5511999998888", got.Event.Sender)
		require.Equal(t, "qual a senha da os 890", got.Event.Text)
		require.Equal(t, entities.EventKindMessage, got.Event.Kind)
		require.Equal(t, entities.MessageTypeText, got.Event.MessageType)
		require.Equal(t, "wamid.test", got.Event.MessageID)
		require.Equal(t, fixedNow.Add(-4*time.Minute), got.Event.Timestamp)
		require.JSONEq(t, string(raw), string(got.Event.Raw))
	})

	t.Run("missing timestamp is not stale", func(t *testing.T) {
		got := c.Classify(textPayload("5511999998888", "oi", time.Time{}), nil)
		require.True(t, got.Actionable())
		require.True(t, got.Event.Timestamp.IsZero())
	})

	t.Run("garbage timestamp is ignored", func(t *testing.T) {
		p := textPayload("5511999998888", "oi", time.Time{})
		p.Entry[0].Changes[0].Value.Messages[0].Timestamp = "yesterday"
		require.True(t, c.Classify(p, nil).Actionable())
	})

	t.Run("exactly at the age limit", func(t *testing.T) {
		got := c.Classify(textPayload("5511999998888", "oi", fixedNow.Add(-5*time.Minute)), nil)
		require.True(t, got.Actionable())
	})

	t.Run("contacts with messages", func(t *testing.T) {
		p := textPayload("5511999998888", "oi", fixedNow)
		p.Entry[0].Changes[0].Value.Contacts = []entities.WebhookContact{{WaID: "5511999998888"}}
		require.True(t, c.Classify(p, nil).Actionable())
	})
}
