package response

import "mecanica_gateway/internal/usecase"

// WebhookResponse is the JSON body of every POST /webhook answer. Status is
// processed, ignored or error; Type carries the discard reason or intent.
type WebhookResponse struct {
	Status    string `json:"status"`
	Type      string `json:"type,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func FromWebhookOutcome(out usecase.WebhookOutcome, requestID string) WebhookResponse {
	status := out.Status
	if status == "" {
		status = usecase.OutcomeStatusProcessed
	}
	return WebhookResponse{Status: status, Type: out.Type, RequestID: requestID}
}

func WebhookIgnored(reason usecase.DiscardReason, requestID string) WebhookResponse {
	return WebhookResponse{Status: usecase.OutcomeStatusIgnored, Type: string(reason), RequestID: requestID}
}

func WebhookError(message, requestID string) WebhookResponse {
	return WebhookResponse{Status: usecase.OutcomeStatusError, Message: message, RequestID: requestID}
}
