package request

import "strings"

// WebhookVerifyRequest is the subscription handshake sent by the provider as
// query parameters on GET /webhook.
type WebhookVerifyRequest struct {
	Mode      string `form:"hub.mode" binding:"required"`
	Token     string `form:"hub.verify_token" binding:"required"`
	Challenge string `form:"hub.challenge" binding:"required"`
}

func (r WebhookVerifyRequest) Normalized() WebhookVerifyRequest {
	return WebhookVerifyRequest{
		Mode:      strings.TrimSpace(r.Mode),
		Token:     r.Token,
		Challenge: r.Challenge,
	}
}
