package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, StoreCSV, cfg.Store.Kind)
	assert.Equal(t, filepath.Join("logs", "interactions.csv"), cfg.Store.CSVPath())
	assert.Equal(t, filepath.Join("logs", "chatbot_interactions.log"), cfg.Store.LogPath())
	assert.Equal(t, 5*time.Second, cfg.Store.WriteTimeout)
	assert.True(t, cfg.Completion.Enabled)
	assert.Equal(t, ProviderAzure, cfg.Completion.Provider)
	assert.Equal(t, "X-Caller-Id", cfg.Completion.AzureCallerHeader)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RECORD_STORE", " LOG ")
	t.Setenv("LOG_DIR", "/var/log/chatrelay")
	t.Setenv("STORE_WRITE_TIMEOUT", "2s")
	t.Setenv("COMPLETION_PROVIDER", "vertex")
	t.Setenv("VERTEX_PROJECT_ID", "proj")
	t.Setenv("VERTEX_LOCATION", "europe-west4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoreLog, cfg.Store.Kind)
	assert.Equal(t, "/var/log/chatrelay/chatbot_interactions.log", cfg.Store.LogPath())
	assert.Equal(t, 2*time.Second, cfg.Store.WriteTimeout)
	assert.Equal(t, ProviderVertex, cfg.Completion.Provider)
	assert.Empty(t, cfg.Completion.MissingVertex())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"unknown store", map[string]string{"RECORD_STORE": "s3"}, "unknown RECORD_STORE"},
		{"redis without addr", map[string]string{"RECORD_STORE": "redis"}, "REDIS_ADDR"},
		{"postgres without uri", map[string]string{"RECORD_STORE": "postgres"}, "POSTGRES_URI"},
		{"mongo without uri", map[string]string{"RECORD_STORE": "mongo"}, "MONGO_URI"},
		{"gcs without bucket", map[string]string{"RECORD_STORE": "gcs"}, "GCS_BUCKET"},
		{"unknown provider", map[string]string{"COMPLETION_PROVIDER": "bard"}, "unknown COMPLETION_PROVIDER"},
		{"bad duration", map[string]string{"STORE_WRITE_TIMEOUT": "soon"}, "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCompletionConfig_MissingAzure(t *testing.T) {
	c := CompletionConfig{AzureAPIKey: "k", AzureEndpoint: "https://x.openai.azure.com"}
	assert.Equal(t, []string{"AZURE_OPENAI_API_VERSION", "AZURE_OPENAI_DEPLOYMENT"}, c.MissingAzure())

	c.AzureAPIVersion = "2024-06-01"
	c.AzureDeployment = "gpt-4o"
	assert.Empty(t, c.MissingAzure())
}
