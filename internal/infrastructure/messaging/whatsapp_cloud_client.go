package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrWhatsAppNotConfigured = errors.New("whatsapp client not configured")

// WhatsAppCloudClient sends text messages through the Cloud API
// (POST {api}/{phone_number_id}/messages).
type WhatsAppCloudClient struct {
	apiURL        string
	phoneNumberID string
	accessToken   string
	httpClient    *http.Client
	mockMode      bool
}

var _ interfaces.IMessagingProvider = (*WhatsAppCloudClient)(nil)

func NewWhatsAppCloudClient(cfg config.WhatsAppConfig) *WhatsAppCloudClient {
	timeout := cfg.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if cfg.Mock {
		log.Printf("[whatsapp][client] mock mode enabled")
	} else if cfg.AccessToken == "" || cfg.PhoneNumberID == "" {
		log.Printf("[whatsapp][client] missing WHATSAPP_ACCESS_TOKEN or WHATSAPP_PHONE_NUMBER_ID; replies will fail")
	}
	return &WhatsAppCloudClient{
		apiURL:        strings.TrimRight(cfg.APIURL, "/"),
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
		httpClient:    &http.Client{Timeout: timeout},
		mockMode:      cfg.Mock,
	}
}

type sendTextRequest struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             sendTextBody `json:"text"`
}

type sendTextBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

type sendTextResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type apiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

func (c *WhatsAppCloudClient) SendText(ctx context.Context, to, body string) (string, error) {
	if c != nil && c.mockMode {
		id := "mock-" + uuid.NewString()
		log.Printf("[whatsapp][client] mock send to_len=%d body_len=%d provider_message_id=%s", len(to), len(body), id)
		return id, nil
	}
	if c == nil || c.accessToken == "" || c.phoneNumberID == "" {
		return "", ErrWhatsAppNotConfigured
	}

	payload, err := json.Marshal(sendTextRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text:             sendTextBody{Body: body},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling send request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.apiURL, c.phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending message: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading send response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiErrorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("whatsapp api error (status %d, code %d): %s", resp.StatusCode, apiErr.Error.Code, apiErr.Error.Message)
		}
		return "", fmt.Errorf("whatsapp api error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var out sendTextResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parsing send response: %w", err)
	}
	if len(out.Messages) == 0 || out.Messages[0].ID == "" {
		return "", errors.New("whatsapp api returned no message id")
	}
	return out.Messages[0].ID, nil
}
