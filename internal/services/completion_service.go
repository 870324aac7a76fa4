package services

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yoockh/chatrelay/internal/metrics"
	"github.com/yoockh/chatrelay/internal/models"
	"github.com/yoockh/chatrelay/internal/providers/llm"
	"github.com/yoockh/chatrelay/internal/utils"
)

type CompletionService interface {
	Complete(ctx context.Context, prompt string, temperature *float64) (*models.CompletionResult, error)
}

type completionService struct {
	provider llm.Provider
	timeout  time.Duration
	log      *logrus.Logger
}

func NewCompletionService(provider llm.Provider, timeout time.Duration, l *logrus.Logger) CompletionService {
	return &completionService{provider: provider, timeout: timeout, log: l}
}

func (s *completionService) Complete(ctx context.Context, prompt string, temperature *float64) (*models.CompletionResult, error) {
	const op = "CompletionService.Complete"

	if strings.TrimSpace(prompt) == "" {
		return nil, utils.E(utils.CodeValidation, op, "prompt is required", nil)
	}
	temp := models.DefaultTemperature
	if temperature != nil {
		temp = *temperature
	}
	if temp < 0 || temp > 2 {
		return nil, utils.E(utils.CodeValidation, op, "temperature must be between 0 and 2", nil)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	name := s.provider.Name()
	start := time.Now()
	res, err := s.provider.Complete(ctx, prompt, temp)
	if err != nil {
		metrics.Completions.WithLabelValues(name, metrics.ResultError).Inc()
		if utils.IsCode(err, utils.CodeConfiguration) {
			return nil, err
		}
		return nil, utils.E(utils.CodeUpstream, op, "completion provider request failed", err)
	}
	if res == nil {
		metrics.Completions.WithLabelValues(name, metrics.ResultError).Inc()
		return nil, utils.E(utils.CodeUpstream, op, "completion provider returned no result", nil)
	}
	metrics.CompletionLatency.WithLabelValues(name).Observe(time.Since(start).Seconds())
	metrics.Completions.WithLabelValues(name, metrics.ResultOK).Inc()
	metrics.CompletionTokens.WithLabelValues(name, "prompt").Add(float64(res.Usage.PromptTokens))
	metrics.CompletionTokens.WithLabelValues(name, "completion").Add(float64(res.Usage.CompletionTokens))

	s.log.WithFields(logrus.Fields{
		"provider":     name,
		"total_tokens": res.Usage.TotalTokens,
	}).Debug("completion relayed")
	return res, nil
}
