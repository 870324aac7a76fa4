package llm

import (
	"testing"

	vertexgenai "cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeGemini(t *testing.T) {
	res := normalizeGemini(&vertexgenai.GenerateContentResponse{
		Candidates: []*vertexgenai.Candidate{{
			Content: &vertexgenai.Content{Parts: []vertexgenai.Part{vertexgenai.Text("Hello, "), vertexgenai.Text("world")}},
		}},
		UsageMetadata: &vertexgenai.UsageMetadata{PromptTokenCount: 4, CandidatesTokenCount: 2, TotalTokenCount: 6},
	})

	assert.Equal(t, "Hello, world", res.Text)
	assert.Equal(t, int64(4), res.Usage.PromptTokens)
	assert.Equal(t, int64(2), res.Usage.CompletionTokens)
	assert.Equal(t, int64(6), res.Usage.TotalTokens)
}

func TestNormalizeGemini_NoUsageNoText(t *testing.T) {
	res := normalizeGemini(&vertexgenai.GenerateContentResponse{})

	assert.NotEmpty(t, res.Text)
	assert.Equal(t, int64(0), res.Usage.PromptTokens)
	assert.Equal(t, int64(0), res.Usage.CompletionTokens)
	assert.Equal(t, int64(0), res.Usage.TotalTokens)
}

func TestNormalizeGemini_Nil(t *testing.T) {
	res := normalizeGemini(nil)
	assert.Equal(t, "null", res.Text)
}
