package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yoockh/chatrelay/internal/models"
)

// Provider sends one prompt to a hosted model and returns its normalized answer.
// Implementations make exactly one outbound call per Complete and never retry.
type Provider interface {
	Complete(ctx context.Context, prompt string, temperature float64) (*models.CompletionResult, error)
	Name() string
}

// renderRaw is the text fallback when a provider response carries no text.
func renderRaw(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(b)
}
