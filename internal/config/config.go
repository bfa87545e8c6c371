package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all configuration values from environment.
type Config struct {
	AppPort    string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	// Nearby endpoint settings
	DefaultRadiusKm float64       // Default search radius in km when the query omits one (default: 5)
	RateLimitMax    int           // Requests allowed per client IP per window (default: 30)
	RateLimitWindow time.Duration // Rate limit window (default: 1 minute)
}

// LoadConfig loads configuration from environment variables. A .env file is
// honored when present; real deployments set the environment directly.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	defaultRadius := 5.0
	if radiusEnv := os.Getenv("NEARBY_DEFAULT_RADIUS_KM"); radiusEnv != "" {
		val, err := strconv.ParseFloat(radiusEnv, 64)
		if err == nil {
			defaultRadius = val
		}
	}
	rateLimitMax := 30
	if maxEnv := os.Getenv("NEARBY_RATE_LIMIT"); maxEnv != "" {
		val, err := strconv.Atoi(maxEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid NEARBY_RATE_LIMIT value: %v", err)
		}
		rateLimitMax = val
	}
	rateLimitWindow := time.Minute
	if windowEnv := os.Getenv("NEARBY_RATE_WINDOW_SECONDS"); windowEnv != "" {
		val, err := strconv.Atoi(windowEnv)
		if err != nil {
			return nil, fmt.Errorf("invalid NEARBY_RATE_WINDOW_SECONDS value: %v", err)
		}
		rateLimitWindow = time.Duration(val) * time.Second
	}
	accessTTL := time.Hour
	if ttlEnv := os.Getenv("ACCESS_TOKEN_TTL_MINUTES"); ttlEnv != "" {
		val, err := strconv.Atoi(ttlEnv)
		if err == nil {
			accessTTL = time.Duration(val) * time.Minute
		}
	}
	refreshTTL := 7 * 24 * time.Hour
	if ttlEnv := os.Getenv("REFRESH_TOKEN_TTL_HOURS"); ttlEnv != "" {
		val, err := strconv.Atoi(ttlEnv)
		if err == nil {
			refreshTTL = time.Duration(val) * time.Hour
		}
	}

	cfg := &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret:       os.Getenv("JWT_SECRET"),
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: refreshTTL,

		DefaultRadiusKm: defaultRadius,
		RateLimitMax:    rateLimitMax,
		RateLimitWindow: rateLimitWindow,
	}
	// Basic validation for required fields
	if cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is incomplete")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// ConnectDatabase initializes a GORM database connection to PostgreSQL.
// TranslateError maps driver unique-violation errors to gorm.ErrDuplicatedKey.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return db, nil
}
