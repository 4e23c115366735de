package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AI       AIConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig points at the optional product catalog database. When
// Database is empty the embedded sample catalog is used instead.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Schema   string
}

// RedisConfig points at the optional Redis used for session storage and
// rate limiting. When Host is empty sessions stay in process memory.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AIConfig carries the external AI service credentials. Any service left
// unconfigured degrades that capability to a canned demo response.
type AIConfig struct {
	OpenAIEndpoint   string
	OpenAIKey        string
	OpenAIDeployment string
	VisionEndpoint   string
	VisionKey        string
	SpeechKey        string
	SpeechRegion     string
}

func Load() *Config {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SCHEMA", "public")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("AZURE_OPENAI_DEPLOYMENT", "gpt-4")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Database: viper.GetString("DB_DATABASE"),
			Schema:   viper.GetString("DB_SCHEMA"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		AI: AIConfig{
			OpenAIEndpoint:   viper.GetString("AZURE_OPENAI_ENDPOINT"),
			OpenAIKey:        viper.GetString("AZURE_OPENAI_KEY"),
			OpenAIDeployment: viper.GetString("AZURE_OPENAI_DEPLOYMENT"),
			VisionEndpoint:   viper.GetString("AZURE_CV_ENDPOINT"),
			VisionKey:        viper.GetString("AZURE_CV_KEY"),
			SpeechKey:        viper.GetString("AZURE_SPEECH_KEY"),
			SpeechRegion:     viper.GetString("AZURE_SPEECH_REGION"),
		},
	}
}

// Validate fails fast when production runs without required AI credentials.
// Development tolerates missing credentials and runs those paths in demo mode.
func (c *Config) Validate() error {
	if c.Server.Env != "production" {
		return nil
	}

	required := []struct {
		name  string
		value string
	}{
		{"AZURE_OPENAI_ENDPOINT", c.AI.OpenAIEndpoint},
		{"AZURE_OPENAI_KEY", c.AI.OpenAIKey},
		{"AZURE_CV_ENDPOINT", c.AI.VisionEndpoint},
		{"AZURE_CV_KEY", c.AI.VisionKey},
		{"AZURE_SPEECH_KEY", c.AI.SpeechKey},
		{"AZURE_SPEECH_REGION", c.AI.SpeechRegion},
	}

	var missing []string
	for _, setting := range required {
		if setting.value == "" {
			missing = append(missing, setting.name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// OpenAIConfigured reports whether text generation credentials are present.
func (c *Config) OpenAIConfigured() bool {
	return c.AI.OpenAIEndpoint != "" && c.AI.OpenAIKey != ""
}

// VisionConfigured reports whether computer vision credentials are present.
func (c *Config) VisionConfigured() bool {
	return c.AI.VisionEndpoint != "" && c.AI.VisionKey != ""
}

// SpeechConfigured reports whether speech credentials are present.
func (c *Config) SpeechConfigured() bool {
	return c.AI.SpeechKey != "" && c.AI.SpeechRegion != ""
}

// DatabaseConfigured reports whether a catalog database is configured.
func (c *Config) DatabaseConfigured() bool {
	return c.Database.Database != "" && c.Database.User != ""
}

// RedisConfigured reports whether Redis is configured.
func (c *Config) RedisConfigured() bool {
	return c.Redis.Host != ""
}

// DSN builds the Postgres connection string for the catalog database.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.Schema,
	)
}
