package routes

import (
	"mecanica_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhook = "/webhook"
)

func addWebhookRoutes(rg gin.IRoutes, webhookHandler *handlers.WebhookHandler) {
	// Handshake and deliveries share the same path, as registered with the provider.
	rg.GET(PathWebhook, webhookHandler.Verify)
	rg.POST(PathWebhook, webhookHandler.Receive)
}
