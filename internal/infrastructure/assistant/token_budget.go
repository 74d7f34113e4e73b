package assistant

import (
	"log"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

// TokenBudget trims text to a token limit. Without a tokenizer (the BPE
// ranks could not be loaded) it approximates 4 characters per token.
type TokenBudget struct {
	tokenizer *tiktoken.Tiktoken
	maxTokens int
}

func NewTokenBudget(model string, maxTokens int) *TokenBudget {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		log.Printf("[assistant][budget] tokenizer unavailable model=%s err=%v; using character estimate", model, err)
		enc = nil
	}
	return &TokenBudget{tokenizer: enc, maxTokens: maxTokens}
}

func (b *TokenBudget) Count(text string) int {
	if b.tokenizer != nil {
		return len(b.tokenizer.Encode(text, nil, nil))
	}
	return (len([]rune(text)) + 3) / 4
}

// Fits reports whether text is within the budget. A non-positive budget
// accepts anything.
func (b *TokenBudget) Fits(text string) bool {
	return b == nil || b.maxTokens <= 0 || b.Count(text) <= b.maxTokens
}
