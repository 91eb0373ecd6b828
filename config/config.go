package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Backend REST API (source of truth for fixers, availability and jobs).
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// MongoDB holds the per-installation tutorial flags.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Google OAuth.
	GoogleClientID    string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleRedirectURI string `mapstructure:"GOOGLE_REDIRECT_URI"`

	BookingSessionTTL  time.Duration `mapstructure:"BOOKING_SESSION_TTL"`
	DashboardCacheTTL  time.Duration `mapstructure:"DASHBOARD_CACHE_TTL"`
	TutorialStartDelay time.Duration `mapstructure:"TUTORIAL_START_DELAY"`
	TutorialVisitIdle  time.Duration `mapstructure:"TUTORIAL_VISIT_IDLE"`
	RequestTargetPath  string        `mapstructure:"REQUEST_TARGET_PATH"`
	LocalTimezone      string        `mapstructure:"LOCAL_TIMEZONE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("API_BASE_URL", "https://alquiler-back-soft-war2-qizb.vercel.app")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "servineo")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_REDIRECT_URI", "https://front-servineo-1wz6.vercel.app/auth/google/callback")
	viper.SetDefault("BOOKING_SESSION_TTL", 30*time.Minute)
	viper.SetDefault("DASHBOARD_CACHE_TTL", 5*time.Minute)
	viper.SetDefault("TUTORIAL_START_DELAY", time.Second)
	viper.SetDefault("TUTORIAL_VISIT_IDLE", 30*time.Minute)
	viper.SetDefault("REQUEST_TARGET_PATH", "/solicitud-trabajo")
	viper.SetDefault("LOCAL_TIMEZONE", "America/La_Paz")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig.APIBaseURL = strings.TrimRight(AppConfig.APIBaseURL, "/")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// Location resolves LOCAL_TIMEZONE, falling back to the server's local zone.
func Location() *time.Location {
	if AppConfig.LocalTimezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(AppConfig.LocalTimezone)
	if err != nil {
		log.Printf("Unknown LOCAL_TIMEZONE %q, using server local time", AppConfig.LocalTimezone)
		return time.Local
	}
	return loc
}
