// Package config loads process configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config aggregates every recognized option. All fields have defaults so a
// bare environment still yields a runnable (mock-model) process.
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Model     ModelConfig
	Protocol  ProtocolConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

// AppConfig identifies the running service.
type AppConfig struct {
	Name string `envconfig:"APP_NAME" default:"whereeatai"`
	Env  string `envconfig:"APP_ENV" default:"development"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `envconfig:"API_HOST" default:"0.0.0.0"`
	Port int    `envconfig:"API_PORT" default:"8000"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ModelConfig selects and configures the generation provider. BaseURL
// defaults to the SiliconFlow OpenAI-compatible endpoint serving Qwen.
type ModelConfig struct {
	Provider    string  `envconfig:"MODEL_PROVIDER" default:"openai"`
	APIKey      string  `envconfig:"API_KEY"`
	BaseURL     string  `envconfig:"BASE_URL" default:"https://api.siliconflow.cn/v1"`
	Name        string  `envconfig:"MODEL_NAME" default:"Qwen/Qwen3-8B"`
	Temperature float64 `envconfig:"MODEL_TEMPERATURE" default:"0.7"`
	MaxTokens   int64   `envconfig:"MODEL_MAX_TOKENS" default:"4096"`
}

// ProtocolConfig supplies the message metadata defaults consumed by the A2A
// protocol layer.
type ProtocolConfig struct {
	TimeoutSeconds int `envconfig:"TIMEOUT_SECONDS" default:"30"`
	RetryBudget    int `envconfig:"RETRY_BUDGET" default:"3"`
}

// RateLimitConfig throttles callers at the HTTP boundary.
type RateLimitConfig struct {
	Calls  int           `envconfig:"RATE_LIMIT_CALLS" default:"100"`
	Period time.Duration `envconfig:"RATE_LIMIT_PERIOD" default:"60s"`
}

// LogConfig selects the log sink.
type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	Dir        string `envconfig:"LOG_DIR" default:"logs"`
	File       string `envconfig:"LOG_FILE"`
	JSON       bool   `envconfig:"LOG_JSON" default:"false"`
	MaxSizeMB  int    `envconfig:"LOG_MAX_SIZE_MB" default:"10"`
	MaxBackups int    `envconfig:"LOG_MAX_BACKUPS" default:"5"`
}

// Load reads the optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env config: %w", err)
	}
	return &cfg, nil
}
