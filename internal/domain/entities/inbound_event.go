package entities

import (
	"encoding/json"
	"time"
)

type EventKind string

const (
	EventKindMessage       EventKind = "message"
	EventKindStatusReceipt EventKind = "status_receipt"
	EventKindContactSync   EventKind = "contact_sync"
	EventKindUnknown       EventKind = "unknown"
)

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeOther MessageType = "other"
)

// InboundEvent is the normalized form of one provider delivery. It lives only
// for the duration of a request.
type InboundEvent struct {
	Kind        EventKind
	Sender      string
	MessageID   string
	MessageType MessageType
	Text        string
	// Timestamp is zero when the provider omitted it or sent garbage.
	Timestamp time.Time
	IsEcho    bool
	Raw       json.RawMessage
}
