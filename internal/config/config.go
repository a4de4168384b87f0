package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Retrieval RetrievalConfig `mapstructure:"retrieval"`
	Task      TaskConfig      `mapstructure:"task"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// LLMConfig contains all LLM integration related settings.
// GeminiAPIKey may be empty: the application then runs in degraded mode with
// a deterministic mock provider instead of live model calls.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max_retries" validate:"gte=0,lte=10"`
}

// RetrievalConfig contains settings for the per-user retrieval index.
type RetrievalConfig struct {
	IndexPath           string `mapstructure:"index_path" validate:"required"`
	EmbeddingModel      string `mapstructure:"embedding_model"`
	EmbeddingDimensions int    `mapstructure:"embedding_dimensions" validate:"gt=0"`
	TopK                int    `mapstructure:"top_k" validate:"gt=0,lte=50"`
}

// TaskConfig contains settings for the background task runner.
type TaskConfig struct {
	WorkerCount  int `mapstructure:"worker_count" validate:"gt=0,lte=64"`
	QueueSize    int `mapstructure:"queue_size" validate:"gt=0"`
	StuckTaskAge int `mapstructure:"stuck_task_age_minutes" validate:"gte=0"`
}
