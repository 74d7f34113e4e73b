package entities

// OutboundReply is the single message sent back for a delivery. To keeps the
// sender address as received; the dispatcher normalizes it.
type OutboundReply struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
