package llm

import (
	"context"
	"fmt"
	"strings"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"google.golang.org/api/option"

	"github.com/yoockh/chatrelay/internal/models"
)

type VertexGemini struct {
	client    *vertexgenai.Client
	modelName string
}

func NewVertexGemini(ctx context.Context, projectID, location, modelName string, opts ...option.ClientOption) (*VertexGemini, error) {
	c, err := vertexgenai.NewClient(ctx, projectID, location, opts...)
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	return &VertexGemini{client: c, modelName: modelName}, nil
}

func (v *VertexGemini) Close() error { return v.client.Close() }

func (v *VertexGemini) Name() string { return "vertex" }

func (v *VertexGemini) Complete(ctx context.Context, prompt string, temperature float64) (*models.CompletionResult, error) {
	// a model handle per call: temperature is per request
	m := v.client.GenerativeModel(v.modelName)
	m.SetTemperature(float32(temperature))

	resp, err := m.GenerateContent(ctx, vertexgenai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}
	return normalizeGemini(resp), nil
}

func normalizeGemini(resp *vertexgenai.GenerateContentResponse) *models.CompletionResult {
	out := &models.CompletionResult{}
	if resp == nil {
		out.Text = renderRaw(resp)
		return out
	}

	if u := resp.UsageMetadata; u != nil {
		out.Usage = models.Usage{
			PromptTokens:     int64(u.PromptTokenCount),
			CompletionTokens: int64(u.CandidatesTokenCount),
			TotalTokens:      int64(u.TotalTokenCount),
		}
	}

	var sb strings.Builder
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if t, ok := part.(vertexgenai.Text); ok {
				sb.WriteString(string(t))
			}
		}
	}
	if sb.Len() > 0 {
		out.Text = sb.String()
	} else {
		out.Text = renderRaw(resp)
	}
	return out
}
