package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type StoreKind string

const (
	StoreCSV      StoreKind = "csv"
	StoreLog      StoreKind = "log"
	StoreRedis    StoreKind = "redis"
	StorePostgres StoreKind = "postgres"
	StoreMongo    StoreKind = "mongo"
	StoreGCS      StoreKind = "gcs"
)

type ProviderKind string

const (
	ProviderAzure    ProviderKind = "azure"
	ProviderVertex   ProviderKind = "vertex"
	ProviderDisabled ProviderKind = "disabled"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"8000"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Store      StoreConfig
	Completion CompletionConfig
}

type StoreConfig struct {
	Kind         StoreKind     `env:"RECORD_STORE" envDefault:"csv"`
	WriteTimeout time.Duration `env:"STORE_WRITE_TIMEOUT" envDefault:"5s"`

	// file stores
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	CSVFileName string `env:"CSV_FILE_NAME" envDefault:"interactions.csv"`
	LogFileName string `env:"LOG_FILE_NAME" envDefault:"chatbot_interactions.log"`

	RedisAddr   string `env:"REDIS_ADDR"`
	RedisStream string `env:"REDIS_STREAM" envDefault:"interactions"`

	PostgresURI string `env:"POSTGRES_URI"`

	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"chatrelay"`

	GCSBucket string `env:"GCS_BUCKET"`
	GCSPrefix string `env:"GCS_PREFIX" envDefault:"interactions"`
}

type CompletionConfig struct {
	Enabled  bool          `env:"COMPLETION_ENABLED" envDefault:"true"`
	Provider ProviderKind  `env:"COMPLETION_PROVIDER" envDefault:"azure"`
	Timeout  time.Duration `env:"COMPLETION_TIMEOUT" envDefault:"60s"`

	AzureAPIKey       string `env:"AZURE_OPENAI_API_KEY"`
	AzureAPIVersion   string `env:"AZURE_OPENAI_API_VERSION"`
	AzureEndpoint     string `env:"AZURE_OPENAI_ENDPOINT"`
	AzureDeployment   string `env:"AZURE_OPENAI_DEPLOYMENT"`
	AzureCallerID     string `env:"AZURE_OPENAI_CALLER_ID"`
	AzureCallerHeader string `env:"AZURE_OPENAI_CALLER_HEADER" envDefault:"X-Caller-Id"`

	VertexProjectID       string `env:"VERTEX_PROJECT_ID"`
	VertexLocation        string `env:"VERTEX_LOCATION"`
	VertexModel           string `env:"VERTEX_MODEL" envDefault:"gemini-2.0-flash"`
	VertexCredentialsFile string `env:"VERTEX_CREDENTIALS_FILE"`
}

// Load reads the process environment. Call godotenv.Load first to pick up a .env file.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Store.Kind = StoreKind(strings.ToLower(strings.TrimSpace(string(cfg.Store.Kind))))
	cfg.Completion.Provider = ProviderKind(strings.ToLower(strings.TrimSpace(string(cfg.Completion.Provider))))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings a store or provider cannot start without.
// Missing completion credentials are not an error here: the relay is disabled instead.
func (c *Config) Validate() error {
	s := c.Store
	switch s.Kind {
	case StoreCSV, StoreLog:
		if s.LogDir == "" {
			return fmt.Errorf("LOG_DIR must not be empty")
		}
	case StoreRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when RECORD_STORE=redis")
		}
	case StorePostgres:
		if s.PostgresURI == "" {
			return fmt.Errorf("POSTGRES_URI is required when RECORD_STORE=postgres")
		}
	case StoreMongo:
		if s.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when RECORD_STORE=mongo")
		}
	case StoreGCS:
		if s.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET is required when RECORD_STORE=gcs")
		}
	default:
		return fmt.Errorf("unknown RECORD_STORE %q", s.Kind)
	}
	if s.WriteTimeout <= 0 {
		return fmt.Errorf("STORE_WRITE_TIMEOUT must be positive")
	}

	switch c.Completion.Provider {
	case ProviderAzure, ProviderVertex, ProviderDisabled:
	default:
		return fmt.Errorf("unknown COMPLETION_PROVIDER %q", c.Completion.Provider)
	}
	return nil
}

func (s StoreConfig) CSVPath() string { return filepath.Join(s.LogDir, s.CSVFileName) }

func (s StoreConfig) LogPath() string { return filepath.Join(s.LogDir, s.LogFileName) }

// MissingAzure lists the unset Azure OpenAI credentials by env name.
func (c CompletionConfig) MissingAzure() []string {
	var missing []string
	for _, kv := range []struct{ name, val string }{
		{"AZURE_OPENAI_API_KEY", c.AzureAPIKey},
		{"AZURE_OPENAI_API_VERSION", c.AzureAPIVersion},
		{"AZURE_OPENAI_ENDPOINT", c.AzureEndpoint},
		{"AZURE_OPENAI_DEPLOYMENT", c.AzureDeployment},
	} {
		if strings.TrimSpace(kv.val) == "" {
			missing = append(missing, kv.name)
		}
	}
	return missing
}

func (c CompletionConfig) MissingVertex() []string {
	var missing []string
	if strings.TrimSpace(c.VertexProjectID) == "" {
		missing = append(missing, "VERTEX_PROJECT_ID")
	}
	if strings.TrimSpace(c.VertexLocation) == "" {
		missing = append(missing, "VERTEX_LOCATION")
	}
	return missing
}
