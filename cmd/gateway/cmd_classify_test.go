package main

import (
	"testing"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPayload(t *testing.T) {
	cfg := config.WhatsAppConfig{PhoneNumberID: "109876543210987"}

	tests := []struct {
		name string
		raw  string
		want classifyReport
	}{
		{
			name: "invalid json",
			raw:  "{",
			want: classifyReport{Status: usecase.OutcomeStatusIgnored, Type: string(usecase.DiscardInvalidPayload)},
		},
		{
			name: "status receipt",
			raw:  `{"entry":[{"changes":[{"field":"messages","value":{"statuses":[{"id":"wamid.1","status":"read"}]}}]}]}`,
			want: classifyReport{Status: usecase.OutcomeStatusIgnored, Type: string(usecase.DiscardStatusUpdate)},
		},
		{
			name: "password query",
			raw:  `{"entry":[{"changes":[{"field":"messages","value":{"messages":[{"from":"5511999990001","id":"wamid.2","type":"text","text":{"body":" senha da OS 890 "}}]}}]}]}`,
			want: classifyReport{
				Status:      usecase.OutcomeStatusProcessed,
				Type:        string(entities.IntentOSPasswordQuery),
				Sender:      "5511999990001",
				MessageID:   "wamid.2",
				Text:        "senha da OS 890",
				OrderNumber: "890",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyPayload(cfg, []byte(tt.raw)))
		})
	}
}
