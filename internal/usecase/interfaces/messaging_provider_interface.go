package interfaces

import "context"

// IMessagingProvider abstracts the provider send API (WhatsApp Cloud).
//
// `to` is already normalized (digits with country prefix).
type IMessagingProvider interface {
	SendText(ctx context.Context, to, body string) (providerMessageID string, err error)
}
