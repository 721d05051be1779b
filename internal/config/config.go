package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	Region     string
	PublicURL  string
}

// Email points at the external template-mail service.
type Email struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// Config is loaded once at startup and shared read-only afterwards.
type Config struct {
	ServerPort            int
	APIPrefix             string
	DB                    DB
	MinIO                 MinIO
	Email                 Email
	JWTSecretKey          string
	AccessTokenDuration   time.Duration
	PasswordTokenLifespan time.Duration
	BcryptCost            int
	MaxUploadSize         int64
	ShutdownTimeout       time.Duration
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func LoadDB() DB {
	return DB{
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "gameborrow"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", "localhost:9000"),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "game-images"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		Region:     getEnv("MINIO_REGION", "us-east-1"),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", "http://localhost:9000"),
	}
}

func LoadEmail() Email {
	return Email{
		Host:    getEnv("EMAIL_HOST", "localhost"),
		Port:    getEnvAsInt("EMAIL_PORT", 8081),
		Timeout: getEnvAsDuration("EMAIL_TIMEOUT", 10*time.Second),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:            getEnvAsInt("SERVER_PORT", 8080),
		APIPrefix:             getEnv("API_PREFIX", "/api"),
		DB:                    LoadDB(),
		MinIO:                 LoadMinIO(),
		Email:                 LoadEmail(),
		JWTSecretKey:          getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration:   getEnvAsDuration("ACCESS_TOKEN_DURATION", time.Hour),
		PasswordTokenLifespan: getEnvAsDuration("PASSWORD_TOKEN_LIFESPAN", 5*time.Hour),
		BcryptCost:            getEnvAsInt("BCRYPT_COST", 12),
		MaxUploadSize:         parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
		ShutdownTimeout:       getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}
