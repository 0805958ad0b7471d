package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Admin    AdminConfig
	Notify   NotifyConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// BookingConfig holds the slot-lattice defaults. Operating hours and
// pricing live in the site_settings row; these values seed it and bound
// what the settings service will accept.
type BookingConfig struct {
	OpeningTime  string
	ClosingTime  string
	HourlyRate   float64
	MinimumHours int
	SlotStepMin  int
}

// AdminConfig carries the injected admin credential hash. The core never
// embeds a password literal; only the bcrypt hash arrives via environment.
type AdminConfig struct {
	PasswordHash    string
	SessionTTLHours int
}

type NotifyConfig struct {
	MessengerID string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("OPENING_TIME", "09:00")
	viper.SetDefault("CLOSING_TIME", "21:00")
	viper.SetDefault("HOURLY_RATE", 1000)
	viper.SetDefault("MINIMUM_HOURS", 2)
	viper.SetDefault("SLOT_STEP_MINUTES", 30)
	viper.SetDefault("ADMIN_SESSION_TTL_HOURS", 12)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Booking: BookingConfig{
			OpeningTime:  viper.GetString("OPENING_TIME"),
			ClosingTime:  viper.GetString("CLOSING_TIME"),
			HourlyRate:   viper.GetFloat64("HOURLY_RATE"),
			MinimumHours: viper.GetInt("MINIMUM_HOURS"),
			SlotStepMin:  viper.GetInt("SLOT_STEP_MINUTES"),
		},
		Admin: AdminConfig{
			PasswordHash:    viper.GetString("ADMIN_PASSWORD_HASH"),
			SessionTTLHours: viper.GetInt("ADMIN_SESSION_TTL_HOURS"),
		},
		Notify: NotifyConfig{
			MessengerID: viper.GetString("MESSENGER_ID"),
		},
	}

	return config, nil
}
