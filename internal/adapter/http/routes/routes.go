package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	_ "mecanica_gateway/docs"
	"mecanica_gateway/internal/adapter/http/handlers"
	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/infrastructure/assistant"
	"mecanica_gateway/internal/infrastructure/database"
	"mecanica_gateway/internal/infrastructure/messaging"
	"mecanica_gateway/internal/infrastructure/ratelimit"
	"mecanica_gateway/internal/usecase"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 15 * time.Second

// Run wires the gateway from cfg and serves until ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config) error {
	st, err := buildStores(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	defer st.close()

	rates, closeRates := buildSenderRateMonitor(ctx, cfg.SenderRate)
	defer closeRates()

	webhookHandler := handlers.NewWebhookHandler(
		newWebhookUseCase(cfg, st, rates),
		usecase.NewHandshakeUseCase(cfg.WhatsApp.VerifyToken),
	)

	router := NewRouter(webhookHandler)
	srv := &http.Server{Addr: fmt.Sprintf(":%d", cfg.Port), Handler: router}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[routes] listening port=%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Printf("[routes] shutdown requested")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter registers every HTTP route on a fresh engine.
func NewRouter(webhookHandler *handlers.WebhookHandler) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The provider is configured with the bare path; /v1 mirrors it.
	addWebhookRoutes(router, webhookHandler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWebhookRoutes(v1, webhookHandler)
	return router
}

func newWebhookUseCase(cfg *config.Config, st *stores, rates interfaces.ISenderRateMonitor) *usecase.WebhookUseCase {
	var ai interfaces.IAIAssistant
	if cfg.AI.AssistantAvailable() {
		ai = assistant.NewOpenAIAssistant(cfg.AI)
	} else {
		log.Printf("[routes] AI_API_KEY not set; free-form questions use the static fallback")
	}

	contexts := usecase.NewRoleContextBuilder(
		usecase.NewDefaultRoleContextProviders(st.orders, st.commissions, st.payables, st.clients)...,
	)

	return usecase.NewWebhookUseCase(
		usecase.NewEventClassifier(cfg.WhatsApp),
		rates,
		usecase.NewIdentityResolver(st.directory),
		usecase.NewIntentRouter(),
		usecase.NewAuthorizationPolicy(st.orders),
		usecase.NewReplyComposer(st.commissions, ai, contexts),
		usecase.NewOutboundDispatcher(messaging.NewWhatsAppCloudClient(cfg.WhatsApp), cfg.WhatsApp.CountryPrefix),
	)
}

// buildSenderRateMonitor returns a nil monitor when Redis is not configured or
// not reachable at startup.
func buildSenderRateMonitor(ctx context.Context, cfg config.SenderRateConfig) (interfaces.ISenderRateMonitor, func()) {
	if !cfg.MonitorEnabled() {
		return nil, func() {}
	}
	client, err := database.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Printf("[routes] sender rate monitor disabled: %v", err)
		if client != nil {
			_ = client.Close()
		}
		return nil, func() {}
	}
	log.Printf("[routes] sender rate monitor enabled limit=%d window=%s", cfg.Limit, cfg.Window)
	return ratelimit.NewRedisSenderMonitor(client, cfg.Limit, cfg.Window), func() { _ = client.Close() }
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
