package llm

import (
	"context"

	"github.com/yoockh/chatrelay/internal/models"
	"github.com/yoockh/chatrelay/internal/utils"
)

// Disabled stands in when the relay has no usable credentials. It never touches the network.
type Disabled struct {
	Reason string
}

func (d Disabled) Name() string { return "disabled" }

func (d Disabled) Complete(context.Context, string, float64) (*models.CompletionResult, error) {
	reason := d.Reason
	if reason == "" {
		reason = "completion provider is not configured"
	}
	return nil, utils.E(utils.CodeConfiguration, "llm.Disabled", reason, nil)
}
