package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port                 string `env:"PORT,      default=8080"`
	Env                  string `env:"ENV,       default=development"`
	LogLevel             string `env:"LOG_LEVEL, default=info"`
	JWTSecret            string `env:"JWT_SECRET"`
	AppURL               string `env:"APP_URL,   default=http://localhost:5173"`
	RequireVerifiedEmail bool   `env:"REQUIRE_VERIFIED_EMAIL, default=false"`

	Mongo    MongoConfig
	Redis    RedisConfig
	SendGrid SendGridConfig
	S3       S3Config
	Stream   StreamConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=connectlive"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type SendGridConfig struct {
	APIKey    string `env:"SENDGRID_API_KEY"`
	FromName  string `env:"EMAIL_FROM_NAME,  default=ConnectLive"`
	FromEmail string `env:"EMAIL_FROM,       default=no-reply@connectlive.app"`
}

type S3Config struct {
	Bucket string `env:"S3_BUCKET, default=connectlive-uploads"`
	Region string `env:"AWS_REGION, default=us-east-1"`
}

type StreamConfig struct {
	APIKey    string `env:"STREAM_API_KEY"`
	APISecret string `env:"STREAM_API_SECRET"`
}

// IsProduction gates the Secure flag on the session cookie.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
