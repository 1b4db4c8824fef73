package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	AI struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"ai"`

	// TestUser is seeded on startup when set. Meant for local development only.
	TestUser struct {
		Username string `yaml:"username"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
	} `yaml:"test_user"`
}

const (
	defaultTokenTTL  = 30 // minutes
	defaultAIBaseURL = "https://api.deepseek.com"
	defaultAIModel   = "deepseek-chat"
)

// Load reads configuration from config.yaml, or entirely from environment
// variables when DATABASE_URL is set (the test/deploy path). A .env file in
// the working directory is honored in both modes.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.DSN = dbURL
		cfg.Server.Host = os.Getenv("SERVER_HOST")
		cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
		cfg.Server.Env = os.Getenv("SERVER_ENV")
		cfg.JWT.Secret = os.Getenv("JWT_SECRET")
		cfg.JWT.TTL, _ = strconv.Atoi(os.Getenv("JWT_TTL"))
		cfg.AI.APIKey = os.Getenv("DEEPSEEK_API_KEY")
		cfg.AI.BaseURL = os.Getenv("DEEPSEEK_BASE_URL")
		cfg.AI.Model = os.Getenv("AI_MODEL")
		cfg.TestUser.Username = os.Getenv("TEST_USER_USERNAME")
		cfg.TestUser.Email = os.Getenv("TEST_USER_EMAIL")
		cfg.TestUser.Password = os.Getenv("TEST_USER_PASSWORD")
		applyDefaults(&cfg)
		return &cfg, nil
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, fmt.Errorf("open config file %s: %w", configPath, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", configPath, err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.JWT.TTL <= 0 {
		cfg.JWT.TTL = defaultTokenTTL
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = defaultAIBaseURL
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
}
