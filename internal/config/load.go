package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep a bare environment runnable: only the database URL has
	// no sensible default.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	// Empty defaults make AutomaticEnv aware of these keys.
	v.SetDefault("database.url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.max_retries", 3)
	v.SetDefault("retrieval.index_path", "data/retrieval.db")
	v.SetDefault("retrieval.embedding_model", "gemini-embedding-001")
	v.SetDefault("retrieval.embedding_dimensions", 768)
	v.SetDefault("retrieval.top_k", 5)
	v.SetDefault("task.worker_count", 2)
	v.SetDefault("task.queue_size", 50)
	v.SetDefault("task.stuck_task_age_minutes", 30)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: STUDY_SERVER_PORT, STUDY_DATABASE_URL,
	// STUDY_LLM_GEMINI_API_KEY, and so on.
	v.SetEnvPrefix("STUDY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration against its struct validation rules.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Namespace(), fieldErr.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
