package llm

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/yoockh/chatrelay/internal/models"
)

type AzureOpenAIConfig struct {
	APIKey       string
	APIVersion   string
	Endpoint     string
	Deployment   string
	CallerID     string
	CallerHeader string
	// HTTPClient overrides the transport; the caller header is still injected.
	HTTPClient *http.Client
}

type AzureOpenAI struct {
	client     *openai.Client
	deployment string
}

type headerTransport struct {
	rt      http.RoundTripper
	headers http.Header
}

func (t headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cl := req.Clone(req.Context())
	for k, vs := range t.headers {
		for _, v := range vs {
			cl.Header.Add(k, v)
		}
	}
	return t.rt.RoundTrip(cl)
}

func NewAzureOpenAI(cfg AzureOpenAIConfig) (*AzureOpenAI, error) {
	if cfg.APIKey == "" || cfg.APIVersion == "" || cfg.Endpoint == "" || cfg.Deployment == "" {
		return nil, fmt.Errorf("azure openai: api key, api version, endpoint and deployment are required")
	}

	conf := openai.DefaultAzureConfig(cfg.APIKey, strings.TrimRight(cfg.Endpoint, "/"))
	conf.APIVersion = cfg.APIVersion
	deployment := cfg.Deployment
	conf.AzureModelMapperFunc = func(string) string { return deployment }

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	if cfg.CallerID != "" {
		header := cfg.CallerHeader
		if header == "" {
			header = "X-Caller-Id"
		}
		base := hc.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		h := http.Header{}
		h.Set(header, cfg.CallerID)
		wrapped := *hc
		wrapped.Transport = headerTransport{rt: base, headers: h}
		hc = &wrapped
	}
	conf.HTTPClient = hc

	return &AzureOpenAI{
		client:     openai.NewClientWithConfig(conf),
		deployment: deployment,
	}, nil
}

func (a *AzureOpenAI) Name() string { return "azure" }

func (a *AzureOpenAI) Complete(ctx context.Context, prompt string, temperature float64) (*models.CompletionResult, error) {
	// temperature is omitempty upstream; the smallest float32 keeps an explicit 0 on the wire
	temp := float32(temperature)
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.deployment,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temp,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create chat completion: %w", err)
	}
	return normalizeChatCompletion(resp), nil
}

func normalizeChatCompletion(resp openai.ChatCompletionResponse) *models.CompletionResult {
	out := &models.CompletionResult{
		Usage: models.Usage{
			PromptTokens:     int64(resp.Usage.PromptTokens),
			CompletionTokens: int64(resp.Usage.CompletionTokens),
			TotalTokens:      int64(resp.Usage.TotalTokens),
		},
	}
	if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
		out.Text = resp.Choices[0].Message.Content
	} else {
		out.Text = renderRaw(resp)
	}
	return out
}
