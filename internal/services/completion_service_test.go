package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yoockh/chatrelay/internal/models"
	"github.com/yoockh/chatrelay/internal/providers/llm"
	"github.com/yoockh/chatrelay/internal/utils"
)

type fakeProvider struct {
	calls    int
	lastTemp float64
	res      *models.CompletionResult
	err      error
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(_ context.Context, _ string, temperature float64) (*models.CompletionResult, error) {
	f.calls++
	f.lastTemp = temperature
	return f.res, f.err
}

func f64(v float64) *float64 { return &v }

func TestCompletionService_DefaultTemperature(t *testing.T) {
	p := &fakeProvider{res: &models.CompletionResult{Text: "hi"}}
	svc := NewCompletionService(p, time.Second, quietLogger())

	res, err := svc.Complete(context.Background(), "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", res.Text)
	assert.Equal(t, 1, p.calls)
	assert.InDelta(t, 0.7, p.lastTemp, 1e-9)
}

func TestCompletionService_ExplicitTemperature(t *testing.T) {
	p := &fakeProvider{res: &models.CompletionResult{Text: "hi"}}
	svc := NewCompletionService(p, 0, quietLogger())

	_, err := svc.Complete(context.Background(), "hello", f64(0.2))
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p.lastTemp, 1e-9)
}

func TestCompletionService_Validation(t *testing.T) {
	p := &fakeProvider{}
	svc := NewCompletionService(p, time.Second, quietLogger())

	_, err := svc.Complete(context.Background(), "   ", nil)
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	_, err = svc.Complete(context.Background(), "hello", f64(3))
	assert.True(t, utils.IsCode(err, utils.CodeValidation))

	assert.Equal(t, 0, p.calls)
}

func TestCompletionService_ConfigurationError(t *testing.T) {
	svc := NewCompletionService(llm.Disabled{Reason: "missing Azure OpenAI credentials: AZURE_OPENAI_API_KEY"}, time.Second, quietLogger())

	_, err := svc.Complete(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeConfiguration))
	assert.Contains(t, err.Error(), "AZURE_OPENAI_API_KEY")
}

func TestCompletionService_UpstreamError(t *testing.T) {
	p := &fakeProvider{err: errors.New("connection reset by peer")}
	svc := NewCompletionService(p, time.Second, quietLogger())

	_, err := svc.Complete(context.Background(), "hello", nil)
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUpstream))
	assert.Equal(t, 1, p.calls, "no retries")
}

func TestCompletionService_NilResult(t *testing.T) {
	p := &fakeProvider{}
	svc := NewCompletionService(p, time.Second, quietLogger())

	res, err := svc.Complete(context.Background(), "hello", nil)
	assert.Nil(t, res)
	assert.True(t, utils.IsCode(err, utils.CodeUpstream))
	assert.Equal(t, 1, p.calls)
}
