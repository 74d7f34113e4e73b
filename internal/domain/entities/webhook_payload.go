package entities

import "encoding/json"

// WebhookPayload is the body the messaging provider POSTs to the event endpoint.
//
// Only entry[0].changes[0].value is inspected; the provider never batches more
// than one actionable message per delivery for a single business number.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string            `json:"messaging_product"`
	Metadata         WebhookMetadata   `json:"metadata"`
	Contacts         []WebhookContact  `json:"contacts,omitempty"`
	Messages         []WebhookMessage  `json:"messages,omitempty"`
	Statuses         []json.RawMessage `json:"statuses,omitempty"`
}

type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WebhookContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

type WebhookMessage struct {
	From      string              `json:"from"`
	ID        string              `json:"id"`
	Timestamp string              `json:"timestamp"`
	Type      string              `json:"type"`
	Text      *WebhookMessageText `json:"text,omitempty"`
	// FromMe and Echo are set by the provider on copies of messages the
	// business number itself sent.
	FromMe bool `json:"from_me,omitempty"`
	Echo   bool `json:"echo,omitempty"`
}

type WebhookMessageText struct {
	Body string `json:"body"`
}

// EchoChangeField is the change field used for echoes of our own sends.
const EchoChangeField = "smb_message_echoes"

// FirstChange returns entry[0].changes[0], or false when the envelope is empty.
func (p WebhookPayload) FirstChange() (WebhookChange, bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return WebhookChange{}, false
	}
	return p.Entry[0].Changes[0], true
}
