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

	// Redis configuration (rate-limit counters).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Telegram bot credentials. Leave empty to disable booking notifications.
	TelegramBotToken string `mapstructure:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `mapstructure:"TELEGRAM_CHAT_ID"`

	// Geocoding providers and the service region they are restricted to.
	PhotonURL      string `mapstructure:"PHOTON_URL"`
	NominatimURL   string `mapstructure:"NOMINATIM_URL"`
	GeocodeBBox    string `mapstructure:"GEOCODE_BBOX"`    // Photon: minLon,minLat,maxLon,maxLat
	GeocodeViewbox string `mapstructure:"GEOCODE_VIEWBOX"` // Nominatim: lonLeft,latTop,lonRight,latBottom
	GeocodeCountry string `mapstructure:"GEOCODE_COUNTRY"`
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
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_CHAT_ID", "")
	viper.SetDefault("PHOTON_URL", "https://photon.komoot.io")
	viper.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	// Tamil Nadu service region.
	viper.SetDefault("GEOCODE_BBOX", "76.0,7.8,80.5,13.5")
	viper.SetDefault("GEOCODE_VIEWBOX", "76.0,13.5,80.5,7.8")
	viper.SetDefault("GEOCODE_COUNTRY", "IN")

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
