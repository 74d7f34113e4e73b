package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	request "mecanica_gateway/internal/adapter/http/dto/request"
	response "mecanica_gateway/internal/adapter/http/dto/response"
	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase"
	"mecanica_gateway/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	maxWebhookBodyBytes = 1 << 20
	requestIDHeader     = "X-Request-ID"
	msgInternalError    = "internal error"
)

var (
	errHandshakeMissingParams = pkg.NewDomainErrorSimple("MISSING_PARAMETERS", "Missing hub.mode, hub.verify_token or hub.challenge", http.StatusBadRequest)
	errHandshakeForbidden     = pkg.NewDomainErrorSimple("VERIFICATION_FAILED", "Verification failed", http.StatusForbidden)
)

// WebhookHandler serves the messaging provider webhook.
type WebhookHandler struct {
	webhook   usecase.IWebhookUseCase
	handshake usecase.IHandshakeUseCase
}

func NewWebhookHandler(webhook usecase.IWebhookUseCase, handshake usecase.IHandshakeUseCase) *WebhookHandler {
	return &WebhookHandler{webhook: webhook, handshake: handshake}
}

// Verify answers the subscription handshake.
//
// @Summary      Webhook verification
// @Description  Echoes hub.challenge when hub.verify_token matches the configured token.
// @Tags         webhook
// @Produce      plain
// @Param        hub.mode          query  string  true  "subscribe"
// @Param        hub.verify_token  query  string  true  "verification token"
// @Param        hub.challenge     query  string  true  "challenge to echo"
// @Success      200  {string}  string
// @Failure      400  {object}  pkg.HTTPError
// @Failure      403  {object}  pkg.HTTPError
// @Router       /webhook [get]
func (h *WebhookHandler) Verify(c *gin.Context) {
	var q request.WebhookVerifyRequest
	if err := c.ShouldBindQuery(&q); err != nil {
		// Unbindable params are treated as missing; Verify answers 400.
		log.Printf("[webhook][handler] verification query bind failed err=%v", err)
		q = request.WebhookVerifyRequest{}
	}
	q = q.Normalized()

	challenge, err := h.handshake.Verify(q.Mode, q.Token, q.Challenge)
	if err != nil {
		appErr := mapHandshakeError(err)
		log.Printf("[webhook][handler] verification rejected mode=%q status=%d", q.Mode, appErr.HTTPStatus)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] verification accepted")
	c.String(http.StatusOK, challenge)
}

// Receive processes one provider delivery.
//
// This endpoint NEVER answers with a non-200 status. The provider retries
// any other status and would redeliver the same message, so invalid JSON,
// pipeline errors and even panics are reported inside the 200 body as
// {"status":"error","message":...} or {"status":"ignored","type":...}.
//
// @Summary      Receive webhook event
// @Description  Classifies the delivery, authorizes the sender and replies through the provider. Always 200.
// @Tags         webhook
// @Accept       json
// @Produce      json
// @Param        payload  body      entities.WebhookPayload  true  "Provider delivery"
// @Success      200      {object}  response.WebhookResponse
// @Router       /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	reqID := uuid.NewString()
	started := time.Now()
	c.Header(requestIDHeader, reqID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[webhook][handler] panic recovered request_id=%s panic=%v", reqID, rec)
			c.JSON(http.StatusOK, response.WebhookError(msgInternalError, reqID))
		}
	}()

	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		log.Printf("[webhook][handler] body read failed request_id=%s err=%v", reqID, err)
		c.JSON(http.StatusOK, response.WebhookIgnored(usecase.DiscardInvalidPayload, reqID))
		return
	}

	var payload entities.WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Printf("[webhook][handler] invalid payload request_id=%s body_len=%d err=%v", reqID, len(raw), err)
		c.JSON(http.StatusOK, response.WebhookIgnored(usecase.DiscardInvalidPayload, reqID))
		return
	}

	ctx := usecase.WithRequestID(c.Request.Context(), reqID)
	out, err := h.webhook.ProcessEvent(ctx, payload, raw)
	if err != nil {
		log.Printf("[webhook][handler] processing failed request_id=%s err=%v", reqID, err)
		c.JSON(http.StatusOK, response.WebhookError(msgInternalError, reqID))
		return
	}

	log.Printf("[webhook][handler] done request_id=%s status=%s type=%s elapsed=%s", reqID, out.Status, out.Type, time.Since(started).Round(time.Millisecond))
	c.JSON(http.StatusOK, response.FromWebhookOutcome(out, reqID))
}

func mapHandshakeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrHandshakeMissingParams):
		return errHandshakeMissingParams
	case errors.Is(err, usecase.ErrHandshakeForbidden):
		return errHandshakeForbidden
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
