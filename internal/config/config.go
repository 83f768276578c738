package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `json:"server"`

	// MongoDB Configuration
	MongoDB MongoDBConfig `json:"mongodb"`

	// Auth Configuration
	Auth AuthConfig `json:"auth"`

	// Logging Configuration
	Logging LoggingConfig `json:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Port           string `json:"port"`
	Host           string `json:"host"`
	ReadTimeout    int    `json:"read_timeout"`    // Seconds
	WriteTimeout   int    `json:"write_timeout"`   // Seconds
	RequestTimeout int    `json:"request_timeout"` // Seconds, applied to every request context
	MaxUploadMB    int64  `json:"max_upload_mb"`
	Environment    string `json:"environment"` // development, staging, production
	MediaBaseURL   string `json:"media_base_url"`
	MediaAddr      string `json:"media_addr"` // listen address of cmd/media-server
}

// MongoDBConfig contains document store connection configuration
type MongoDBConfig struct {
	URI            string `json:"-"` // overrides the fields below when set
	Host           string `json:"host"`
	Port           string `json:"port"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Database       string `json:"database"`
	MediaBucket    string `json:"media_bucket"`
	ConnectTimeout int    `json:"connect_timeout"` // Seconds
}

// AuthConfig contains JWT settings
type AuthConfig struct {
	JWTSecret string `json:"-"`
	Issuer    string `json:"issuer"`
	TokenTTL  int    `json:"token_ttl"` // Hours
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SERVER_READ_TIMEOUT", 30)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 60)
	v.SetDefault("SERVER_REQUEST_TIMEOUT", 15)
	v.SetDefault("SERVER_MAX_UPLOAD_MB", 512)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("MEDIA_SERVER_ADDR", ":8080")

	v.SetDefault("MONGO_URI", "")
	v.SetDefault("MONGO_HOST", "localhost")
	v.SetDefault("MONGO_PORT", "27017")
	v.SetDefault("MONGO_USERNAME", "")
	v.SetDefault("MONGO_PASSWORD", "")
	v.SetDefault("MONGO_DATABASE", "primetube")
	v.SetDefault("MONGO_MEDIA_BUCKET", "media_files")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", 10)

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "primetube")
	v.SetDefault("JWT_TTL_HOURS", 24)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("SERVER_HOST"),
			Port:           v.GetString("SERVER_PORT"),
			ReadTimeout:    v.GetInt("SERVER_READ_TIMEOUT"),
			WriteTimeout:   v.GetInt("SERVER_WRITE_TIMEOUT"),
			RequestTimeout: v.GetInt("SERVER_REQUEST_TIMEOUT"),
			MaxUploadMB:    v.GetInt64("SERVER_MAX_UPLOAD_MB"),
			Environment:    v.GetString("APP_ENV"),
			MediaAddr:      v.GetString("MEDIA_SERVER_ADDR"),
		},
		MongoDB: MongoDBConfig{
			URI:            v.GetString("MONGO_URI"),
			Host:           v.GetString("MONGO_HOST"),
			Port:           v.GetString("MONGO_PORT"),
			Username:       v.GetString("MONGO_USERNAME"),
			Password:       v.GetString("MONGO_PASSWORD"),
			Database:       v.GetString("MONGO_DATABASE"),
			MediaBucket:    v.GetString("MONGO_MEDIA_BUCKET"),
			ConnectTimeout: v.GetInt("MONGO_CONNECT_TIMEOUT"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			Issuer:    v.GetString("JWT_ISSUER"),
			TokenTTL:  v.GetInt("JWT_TTL_HOURS"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	mediaBase := v.GetString("MEDIA_BASE_URL")
	if mediaBase == "" {
		mediaBase = fmt.Sprintf("http://localhost:%s/media", cfg.Server.Port)
	}
	cfg.Server.MediaBaseURL = strings.TrimRight(mediaBase, "/")

	return cfg
}

// Addr is the listen address of the HTTP server.
func (cfg *Config) Addr() string {
	return fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
}

func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.URI != "" {
		return cfg.MongoDB.URI
	}
	if cfg.MongoDB.Host == "" {
		cfg.MongoDB.Host = "localhost"
	}
	if cfg.MongoDB.Port == "" {
		cfg.MongoDB.Port = "27017"
	}

	if cfg.MongoDB.Username != "" && cfg.MongoDB.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin",
			url.QueryEscape(cfg.MongoDB.Username),
			url.QueryEscape(cfg.MongoDB.Password),
			cfg.MongoDB.Host,
			cfg.MongoDB.Port,
			cfg.MongoDB.Database,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s", cfg.MongoDB.Host, cfg.MongoDB.Port, cfg.MongoDB.Database)
}
