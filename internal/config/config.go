package config

import (
	"os"
	"strconv"
)

// SheetConfig holds the remote store endpoint settings.
type SheetConfig struct {
	// APIURL is the script endpoint in front of the content spreadsheet.
	APIURL string
}

// GateConfig holds the password-gate secrets and session lifetime.
// Secrets may be plain passwords or bcrypt hashes.
type GateConfig struct {
	TeachersPassword string
	AdminPassword    string
	SessionTTLMin    int
}

// RedisConfig holds the session store connection settings.
type RedisConfig struct {
	URL string
}

// MinIOConfig holds object storage settings for admin uploads.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	Sheet   SheetConfig
	Gate    GateConfig
	Redis   RedisConfig
	MinIO   MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Sheet: SheetConfig{
			APIURL: getEnv("SHEET_API_URL", ""),
		},
		Gate: GateConfig{
			TeachersPassword: getEnv("TEACHERS_PASSWORD", ""),
			AdminPassword:    getEnv("ADMIN_PASSWORD", ""),
			SessionTTLMin:    getEnvInt("SESSION_TTL_MIN", 720),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
