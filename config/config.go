package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Storage  StorageConfig
	App      AppConfig
}

type ServerConfig struct {
	Port          string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	AllowedOrigin string
}

// DatabaseConfig selects and configures the project store.
// Driver is "postgres", "mongo" or "memory".
type DatabaseConfig struct {
	Driver   string
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	MongoURL string
	MongoDB  string
}

// RedisConfig is optional; an empty URL disables the project cache.
type RedisConfig struct {
	URL      string
	CacheTTL time.Duration
}

type AuthConfig struct {
	AdminUsername string
	AdminPassword string
	JWTSecret     string
}

// StorageConfig configures the image upload backend.
// Driver is "local", "s3" or "gcs".
type StorageConfig struct {
	Driver        string
	UploadDir     string
	PublicBaseURL string
	Folder        string
	MaxFiles      int
	MaxFileBytes  int64

	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PublicURL string

	FirebaseCredentialsPath string
	FirebaseBucket          string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	FrontendDir string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	port := getEnv("PORT", "7000")

	cfg := &Config{
		Server: ServerConfig{
			Port:          port,
			ReadTimeout:   getEnvAsDuration("HTTP_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:  getEnvAsDuration("HTTP_WRITE_TIMEOUT", 60*time.Second),
			AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("STORE_DRIVER", "postgres")),
			DSN:      getEnv("DB_DSN", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "portfolio"),
			MongoURL: getEnv("MONGO_URL", ""),
			MongoDB:  getEnv("MONGO_DB", "portfolio"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			CacheTTL: getEnvAsDuration("CACHE_TTL", 10*time.Minute),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
			JWTSecret:     getEnv("JWT_SECRET", ""),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(getEnv("UPLOAD_DRIVER", "local")),
			UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
			PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:"+port), "/"),
			Folder:        getEnv("UPLOAD_FOLDER", "portfolio"),
			MaxFiles:      getEnvAsInt("UPLOAD_MAX_FILES", 10),
			MaxFileBytes:  int64(getEnvAsInt("UPLOAD_MAX_FILE_BYTES", 10<<20)),

			S3Bucket:    getEnv("S3_BUCKET", ""),
			S3Region:    getEnv("S3_REGION", "us-east-1"),
			S3Endpoint:  getEnv("S3_ENDPOINT", ""),
			S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
			S3SecretKey: getEnv("S3_SECRET_KEY", ""),
			S3PublicURL: strings.TrimRight(getEnv("S3_PUBLIC_URL", ""), "/"),

			FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
			FirebaseBucket:          getEnv("FIREBASE_BUCKET", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			FrontendDir: getEnv("FRONTEND_DIR", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Auth.AdminUsername == "" || c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	switch c.Database.Driver {
	case "postgres":
		if c.Database.DSN == "" && c.Database.Host == "" {
			return fmt.Errorf("DB_DSN or DB_HOST is required")
		}
	case "mongo":
		if c.Database.MongoURL == "" {
			return fmt.Errorf("MONGO_URL is required when STORE_DRIVER=mongo")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Database.Driver)
	}

	if c.Storage.MaxFiles <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILES must be positive")
	}
	switch c.Storage.Driver {
	case "local":
		if c.Storage.UploadDir == "" {
			return fmt.Errorf("UPLOAD_DIR is required when UPLOAD_DRIVER=local")
		}
	case "s3":
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("S3_BUCKET is required when UPLOAD_DRIVER=s3")
		}
	case "gcs":
		if c.Storage.FirebaseBucket == "" {
			return fmt.Errorf("FIREBASE_BUCKET is required when UPLOAD_DRIVER=gcs")
		}
	default:
		return fmt.Errorf("unknown UPLOAD_DRIVER %q", c.Storage.Driver)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
