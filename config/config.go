package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB         int    `mapstructure:"REDIS_CACHE_DB"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// Agent runtime that the bridge forwards conversational requests to.
	AgentURL string `mapstructure:"AGENT_URL"`

	// Browser origins allowed to call the API directly.
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`

	// Office calendar settings. SlotTimes is a comma-separated HH:MM grid.
	OfficeSlotTimes       string `mapstructure:"OFFICE_SLOT_TIMES"`
	OfficeOpensAt         string `mapstructure:"OFFICE_OPENS_AT"`
	OfficeClosesAt        string `mapstructure:"OFFICE_CLOSES_AT"`
	BookingHorizonDays    int    `mapstructure:"BOOKING_HORIZON_DAYS"`
	DisplayedHorizonWeeks int    `mapstructure:"DISPLAYED_HORIZON_WEEKS"`
	CancellationPolicy    string `mapstructure:"CANCELLATION_POLICY"`
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
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("AGENT_URL", "http://localhost:8000")
	viper.SetDefault("CORS_ORIGINS", []string{"http://localhost:5173", "http://127.0.0.1:5173"})
	viper.SetDefault("OFFICE_SLOT_TIMES", "09:00,09:30,10:00,10:30,11:00,11:30,14:00,14:30,15:00,15:30,16:00,16:30")
	viper.SetDefault("OFFICE_OPENS_AT", "09:00")
	viper.SetDefault("OFFICE_CLOSES_AT", "17:00")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 14)
	viper.SetDefault("DISPLAYED_HORIZON_WEEKS", 4)
	viper.SetDefault("CANCELLATION_POLICY", "24 hours notice preferred")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
