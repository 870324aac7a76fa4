package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/yoockh/chatrelay/config"
)

// NewFromConfig picks the provider once at startup. Missing credentials or a failed
// client construction install Disabled, so the endpoint answers with a configuration error.
func NewFromConfig(ctx context.Context, cfg config.CompletionConfig, l *logrus.Logger) Provider {
	var (
		p   Provider
		err error
	)

	switch cfg.Provider {
	case config.ProviderAzure:
		if missing := cfg.MissingAzure(); len(missing) > 0 {
			p = Disabled{Reason: "missing Azure OpenAI credentials: " + strings.Join(missing, ", ")}
			break
		}
		p, err = NewAzureOpenAI(AzureOpenAIConfig{
			APIKey:       cfg.AzureAPIKey,
			APIVersion:   cfg.AzureAPIVersion,
			Endpoint:     cfg.AzureEndpoint,
			Deployment:   cfg.AzureDeployment,
			CallerID:     cfg.AzureCallerID,
			CallerHeader: cfg.AzureCallerHeader,
		})
	case config.ProviderVertex:
		if missing := cfg.MissingVertex(); len(missing) > 0 {
			p = Disabled{Reason: "missing Vertex AI settings: " + strings.Join(missing, ", ")}
			break
		}
		var opts []option.ClientOption
		if cfg.VertexCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.VertexCredentialsFile))
		}
		p, err = NewVertexGemini(ctx, cfg.VertexProjectID, cfg.VertexLocation, cfg.VertexModel, opts...)
	default:
		p = Disabled{Reason: "completion provider is disabled"}
	}

	if err != nil {
		p = Disabled{Reason: fmt.Sprintf("%s provider unavailable: %v", cfg.Provider, err)}
	}

	entry := l.WithField("provider", p.Name())
	if d, ok := p.(Disabled); ok {
		entry.WithField("reason", d.Reason).Warn("completion relay disabled")
	} else {
		entry.Info("completion relay ready")
	}
	return p
}
