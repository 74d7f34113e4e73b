package assistant

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
	"mecanica_gateway/internal/domain/entities"
	"mecanica_gateway/internal/usecase/interfaces"
)

var ErrAssistantNotConfigured = errors.New("assistant not configured")

// OpenAIAssistant answers free-form questions through an OpenAI-compatible
// chat completions API, grounded on the role context of the sender.
type OpenAIAssistant struct {
	cfg        config.AIConfig
	httpClient *http.Client
	budget     *TokenBudget
}

var _ interfaces.IAIAssistant = (*OpenAIAssistant)(nil)

func NewOpenAIAssistant(cfg config.AIConfig) *OpenAIAssistant {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	a := &OpenAIAssistant{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
	}
	if cfg.MockActive() {
		log.Printf("[assistant][client] WARNING mock mode enabled; free-form questions get canned answers")
	} else if cfg.AssistantAvailable() {
		a.budget = NewTokenBudget(cfg.Model, cfg.MaxContextTokens)
		log.Printf("[assistant][client] initialized model=%s base_url=%s", cfg.Model, cfg.BaseURL)
	} else {
		log.Printf("[assistant][client] AI_API_KEY not set; free-form questions get the static reply")
	}
	return a
}

func (a *OpenAIAssistant) Available() bool {
	return a != nil && a.cfg.AssistantAvailable()
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float32       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (a *OpenAIAssistant) Ask(ctx context.Context, message, displayName string, rc entities.RoleContext) (string, error) {
	if !a.Available() {
		return "", ErrAssistantNotConfigured
	}
	if a.cfg.MockActive() {
		return mockAnswer(displayName, rc), nil
	}

	system, err := a.systemPrompt(displayName, rc)
	if err != nil {
		return "", err
	}
	body, err := json.Marshal(chatRequest{
		Model: a.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(a.cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+a.cfg.APIKey)

	started := time.Now()
	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parsing response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	log.Printf("[assistant][client] answered role=%s prompt_tokens=%d completion_tokens=%d elapsed=%s",
		rc.Role, out.Usage.PromptTokens, out.Usage.CompletionTokens, time.Since(started).Round(time.Millisecond))
	return out.Choices[0].Message.Content, nil
}

func (a *OpenAIAssistant) systemPrompt(displayName string, rc entities.RoleContext) (string, error) {
	var b strings.Builder
	b.WriteString("Você é o assistente de WhatsApp de uma assistência técnica. Responda em português do Brasil, ")
	b.WriteString("de forma curta e objetiva, em texto simples adequado para WhatsApp.\n")
	b.WriteString("Use apenas os dados do CONTEXTO abaixo. Se a informação não estiver no contexto, diga que não tem acesso a ela.\n")
	b.WriteString("Nunca revele senhas de acesso de OS e nunca invente valores.\n")
	if name := strings.TrimSpace(displayName); name != "" {
		fmt.Fprintf(&b, "Você está falando com %s.\n", name)
	}
	b.WriteString(roleInstructions(rc.Role))

	if rc.IsEmpty() {
		b.WriteString("\nCONTEXTO: nenhum dado disponível no momento.")
		return b.String(), nil
	}
	contextJSON, trimmed, err := fitRoleContext(a.budget, rc)
	if err != nil {
		return "", err
	}
	if trimmed {
		log.Printf("[assistant][client] role context trimmed role=%s max_tokens=%d", rc.Role, a.cfg.MaxContextTokens)
	}
	b.WriteString("\nCONTEXTO (JSON):\n")
	b.WriteString(contextJSON)
	return b.String(), nil
}

func roleInstructions(role entities.Role) string {
	switch role {
	case entities.RoleTechnician:
		return "O usuário é técnico: fale apenas das OS atribuídas a ele e das comissões dele.\n"
	case entities.RoleFinance:
		return "O usuário é do financeiro: foque em contas a pagar, vencimentos e valores em aberto.\n"
	case entities.RoleFrontDesk:
		return "O usuário é atendente: foque em OS abertas, status e clientes.\n"
	case entities.RoleAdmin:
		return "O usuário é administrador: apresente indicadores gerais da loja.\n"
	default:
		return "O perfil do usuário não tem consultas liberadas; oriente-o a falar com o administrador.\n"
	}
}

func mockAnswer(displayName string, rc entities.RoleContext) string {
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "tudo bem"
	}
	if rc.Order != nil {
		return fmt.Sprintf("Olá, %s! A OS %s está com status: %s.", name, rc.Order.OrderNumber, rc.Order.StatusLabel())
	}
	return fmt.Sprintf("Olá, %s! (resposta simulada para o perfil %s)", name, rc.Role)
}
