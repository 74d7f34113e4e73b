package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mecanica_gateway/internal/config"
	"mecanica_gateway/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssistant(srv *httptest.Server, maxContextTokens int) *OpenAIAssistant {
	return &OpenAIAssistant{
		cfg: config.AIConfig{
			APIKey:           "sk-test",
			BaseURL:          srv.URL + "/v1",
			Model:            "gpt-4o-mini",
			MaxTokens:        300,
			MaxContextTokens: maxContextTokens,
		},
		httpClient: srv.Client(),
		budget:     &TokenBudget{maxTokens: maxContextTokens},
	}
}

func TestOpenAIAssistant_Ask(t *testing.T) {
	order := &entities.ServiceOrderSummary{OrderNumber: "890", AccessPassword: "4455", Status: entities.ServiceOrderStatusPronta}
	rc := entities.RoleContext{
		Role:     entities.RoleTechnician,
		TenantID: "t-1",
		Summary:  map[string]any{"open_orders_count": 3},
		Order:    order,
	}

	t.Run("success", func(t *testing.T) {
		var got chatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A OS 890 está pronta."}}],"usage":{"prompt_tokens":120,"completion_tokens":9}}`))
		}))
		defer srv.Close()

		answer, err := newTestAssistant(srv, 0).Ask(context.Background(), "como está a os 890", "Ana", rc)
		require.NoError(t, err)
		require.Equal(t, "A OS 890 está pronta.", answer)

		require.Equal(t, "gpt-4o-mini", got.Model)
		require.Equal(t, 300, got.MaxTokens)
		require.Len(t, got.Messages, 2)
		require.Equal(t, "system", got.Messages[0].Role)
		require.Contains(t, got.Messages[0].Content, "Ana")
		require.Contains(t, got.Messages[0].Content, `"open_orders_count":3`)
		require.Contains(t, got.Messages[0].Content, `"order_number":"890"`)
		require.NotContains(t, got.Messages[0].Content, "4455")
		require.Equal(t, chatMessage{Role: "user", Content: "como está a os 890"}, got.Messages[1])
	})

	t.Run("context is trimmed to the budget", func(t *testing.T) {
		var got chatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
		}))
		defer srv.Close()

		big := entities.RoleContext{Role: entities.RoleAdmin, Summary: map[string]any{"blob": strings.Repeat("x", 4000)}}
		_, err := newTestAssistant(srv, 10).Ask(context.Background(), "kpis", "", big)
		require.NoError(t, err)
		require.NotContains(t, got.Messages[0].Content, strings.Repeat("x", 100))
		require.True(t, json.Valid([]byte(contextJSONFromPrompt(t, got.Messages[0].Content))))
	})

	t.Run("api error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
		}))
		defer srv.Close()

		_, err := newTestAssistant(srv, 0).Ask(context.Background(), "oi", "Ana", rc)
		require.Error(t, err)
		require.Contains(t, err.Error(), "429")
	})

	t.Run("no choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		_, err := newTestAssistant(srv, 0).Ask(context.Background(), "oi", "Ana", rc)
		require.Error(t, err)
	})

	t.Run("not configured", func(t *testing.T) {
		a := NewOpenAIAssistant(config.AIConfig{})
		require.False(t, a.Available())
		_, err := a.Ask(context.Background(), "oi", "Ana", rc)
		require.True(t, errors.Is(err, ErrAssistantNotConfigured))
	})

	t.Run("mock flag is ignored when an api key is set", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"resposta real"}}]}`))
		}))
		defer srv.Close()

		a := newTestAssistant(srv, 0)
		a.cfg.Mock = true
		answer, err := a.Ask(context.Background(), "oi", "Ana", rc)
		require.NoError(t, err)
		require.True(t, called)
		require.Equal(t, "resposta real", answer)
	})

	t.Run("mock mode", func(t *testing.T) {
		a := NewOpenAIAssistant(config.AIConfig{Mock: true})
		require.True(t, a.Available())
		answer, err := a.Ask(context.Background(), "como está a os 890", "Ana", rc)
		require.NoError(t, err)
		require.Contains(t, answer, "890")
		require.Contains(t, answer, "Pronta para retirada")
		require.NotContains(t, answer, "4455")
	})
}

func TestSystemPrompt_EmptyContext(t *testing.T) {
	a := &OpenAIAssistant{}
	prompt, err := a.systemPrompt("Carla", entities.RoleContext{Role: entities.RoleFinance})
	require.NoError(t, err)
	require.Contains(t, prompt, "nenhum dado disponível")
	require.Contains(t, prompt, "financeiro")
}

func TestTokenBudget_CharacterEstimate(t *testing.T) {
	b := &TokenBudget{maxTokens: 2}
	require.Equal(t, 3, b.Count("abcdefghijkl"))
	require.False(t, b.Fits("abcdefghijkl"))
	require.True(t, b.Fits("abc"))

	unlimited := &TokenBudget{}
	require.True(t, unlimited.Fits(strings.Repeat("y", 500)))

	var none *TokenBudget
	require.True(t, none.Fits(strings.Repeat("y", 500)))
}

func contextJSONFromPrompt(t *testing.T, prompt string) string {
	t.Helper()
	const header = "CONTEXTO (JSON):\n"
	idx := strings.Index(prompt, header)
	require.GreaterOrEqual(t, idx, 0, "prompt without context section")
	return prompt[idx+len(header):]
}

func TestFitRoleContext(t *testing.T) {
	orders := make([]map[string]any, 30)
	for i := range orders {
		orders[i] = map[string]any{"order_number": fmt.Sprintf("%d", 1000+i), "status": "Em reparo", "client": "Cliente Teste"}
	}
	summary := map[string]any{"open_orders_count": 30, "open_orders": orders}
	rc := entities.RoleContext{Role: entities.RoleFrontDesk, TenantID: "t-1", Summary: summary}

	t.Run("fits unchanged", func(t *testing.T) {
		out, trimmed, err := fitRoleContext(&TokenBudget{}, rc)
		require.NoError(t, err)
		require.False(t, trimmed)
		require.NotContains(t, out, truncatedKey)
	})

	t.Run("lists are shortened and json stays valid", func(t *testing.T) {
		a := &OpenAIAssistant{cfg: config.AIConfig{MaxContextTokens: 100}, budget: &TokenBudget{maxTokens: 100}}
		prompt, err := a.systemPrompt("Bia", rc)
		require.NoError(t, err)

		contextJSON := contextJSONFromPrompt(t, prompt)
		require.True(t, json.Valid([]byte(contextJSON)), "context must be valid json: %s", contextJSON)

		var got struct {
			Summary struct {
				Count     int              `json:"open_orders_count"`
				Orders    []map[string]any `json:"open_orders"`
				Truncated bool             `json:"truncated"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal([]byte(contextJSON), &got))
		require.True(t, got.Summary.Truncated)
		require.Equal(t, 30, got.Summary.Count)
		require.NotEmpty(t, got.Summary.Orders)
		require.Less(t, len(got.Summary.Orders), 30)
		require.Len(t, summary["open_orders"], 30, "caller summary must not be modified")
	})

	t.Run("oversized scalars are dropped, order is kept", func(t *testing.T) {
		big := entities.RoleContext{
			Role:    entities.RoleTechnician,
			Summary: map[string]any{"notes": strings.Repeat("x", 4000), "open_orders_count": 1},
			Order:   &entities.ServiceOrderSummary{OrderNumber: "890", AccessPassword: "4455"},
		}
		out, trimmed, err := fitRoleContext(&TokenBudget{maxTokens: 60}, big)
		require.NoError(t, err)
		require.True(t, trimmed)
		require.True(t, json.Valid([]byte(out)))
		require.NotContains(t, out, "xxxx")
		require.Contains(t, out, `"order_number":"890"`)
		require.NotContains(t, out, "4455")
	})
}
