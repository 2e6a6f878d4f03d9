package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress  string `mapstructure:"SERVER_ADDRESS"`  // e.g., "127.0.0.1:8080"
	AppEnv         string `mapstructure:"APP_ENV"`         // "production" switches gin to release mode
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"` // comma separated CORS origins

	// AI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`  // API key for OpenAI
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // Optional OpenAI-compatible endpoint
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`    // e.g., "gpt-4o-mini"

	// Usage Configuration
	DailyLimit int `mapstructure:"DAILY_LIMIT"` // generations allowed per calendar day

	// Store Configuration
	StoreBackend  string `mapstructure:"STORE_BACKEND"`  // "sqlite", "redis" or "memory"
	SQLitePath    string `mapstructure:"SQLITE_PATH"`    // defaults to ~/.mvp-launchpad/store.db
	RedisAddr     string `mapstructure:"REDIS_ADDR"`     // e.g., "localhost:6379"
	RedisPassword string `mapstructure:"REDIS_PASSWORD"` // Redis AUTH password
	RedisDB       int    `mapstructure:"REDIS_DB"`       // Redis logical database
	RedisPrefix   string `mapstructure:"REDIS_PREFIX"`   // key namespace, e.g., "mvp:"
}

// Origins splits AllowedOrigins into a list.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("DAILY_LIMIT", 5)
	v.SetDefault("STORE_BACKEND", "sqlite")
	v.SetDefault("SQLITE_PATH", "")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PREFIX", "mvp:")
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name
	setDefaults(v)

	v.AutomaticEnv() // Read environment variables that match keys

	err = v.ReadInConfig()
	if err != nil {
		// If config file not found, log it but continue if env vars might be set
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		log.Println("WARN: OPENAI_API_KEY is not set. Generation requests will fail.")
	}
	if config.DailyLimit <= 0 {
		return Config{}, fmt.Errorf("DAILY_LIMIT must be positive, got %d", config.DailyLimit)
	}

	return
}
