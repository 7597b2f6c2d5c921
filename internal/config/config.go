package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v6"
)

// Config is assembled in three layers: defaults, then the TOML config file
// (path from CONFIG_PATH), then environment variables on top.
type Config struct {
	// Credentials
	TavilyAPIKey string `env:"TAVILY_API_KEY" toml:"tavily_api_key"`
	GeminiAPIKey string `env:"GEMINI_API_KEY" toml:"gemini_api_key"`

	// LLM settings
	LLMProvider      string `env:"LLM_PROVIDER" toml:"llm_provider"`
	LLMBaseURL       string `env:"LLM_BASE_URL" toml:"llm_base_url"`
	LLMModel         string `env:"LLM_MODEL" toml:"llm_model"`
	YandexOAuthToken string `env:"YANDEX_OAUTH_TOKEN" toml:"yandex_oauth_token"`
	YandexFolderID   string `env:"YANDEX_FOLDER_ID" toml:"yandex_folder_id"`

	// Generation knobs
	GenTemperature      float32 `env:"GEN_TEMPERATURE" toml:"gen_temperature"`
	GreetingTemperature float32 `env:"GREETING_TEMPERATURE" toml:"greeting_temperature"`
	SearchMaxResults    int     `env:"SEARCH_MAX_RESULTS" toml:"search_max_results"`
	MaxAttempts         int     `env:"MAX_ATTEMPTS" toml:"max_attempts"`

	// Storage
	LogFilePath string `env:"LOG_FILE_PATH" toml:"log_file_path"`

	// Greeting daemon
	GreetingCron       string `env:"GREETING_CRON" toml:"greeting_cron"`
	GreetingOutputPath string `env:"GREETING_OUTPUT_PATH" toml:"greeting_output_path"`
}

func Default() Config {
	return Config{
		LLMProvider:         "openai",
		LLMBaseURL:          "https://generativelanguage.googleapis.com/v1beta/openai/",
		LLMModel:            "gemini-2.5-pro",
		GenTemperature:      0.2,
		GreetingTemperature: 0.7,
		SearchMaxResults:    3,
		MaxAttempts:         5,
		GreetingCron:        "0 6 * * *",
		GreetingOutputPath:  "data/greeting.json",
	}
}

// Load builds the config and validates credentials. A missing config file
// is fine; a present but unparsable one is not.
func Load() (*Config, error) {
	cfg := Default()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.toml"
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var missing []string
	if c.TavilyAPIKey == "" {
		missing = append(missing, "TAVILY_API_KEY")
	}
	switch c.LLMProvider {
	case "openai":
		if c.GeminiAPIKey == "" {
			missing = append(missing, "GEMINI_API_KEY")
		}
	case "yandex":
		if c.YandexOAuthToken == "" {
			missing = append(missing, "YANDEX_OAUTH_TOKEN")
		}
		if c.YandexFolderID == "" {
			missing = append(missing, "YANDEX_FOLDER_ID")
		}
	default:
		return fmt.Errorf("unknown llm provider: %s", c.LLMProvider)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}
	return nil
}
