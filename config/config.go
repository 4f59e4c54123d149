package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	AdminToken        string `mapstructure:"ADMIN_TOKEN"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling. The operating timezone is the single wall-clock zone all
	// availability blocks are declared in; instants are normalized to UTC at
	// the boundary.
	OperatingTimezone  string `mapstructure:"OPERATING_TIMEZONE"`
	BookingHorizonDays int    `mapstructure:"BOOKING_HORIZON_DAYS"`

	// Legacy default business hours, applied when a professional has declared
	// no availability blocks at all. Minutes from midnight; FallbackDays are
	// time.Weekday values.
	FallbackDayStart int   `mapstructure:"FALLBACK_DAY_START"`
	FallbackDayEnd   int   `mapstructure:"FALLBACK_DAY_END"`
	FallbackDays     []int `mapstructure:"FALLBACK_DAYS"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB       int    `mapstructure:"REDIS_QUEUE_DB"`
	CalendarCacheTTL   int    `mapstructure:"CALENDAR_CACHE_TTL_SECONDS"`
	StripeKey          string `mapstructure:"STRIPE_KEY"`
	VerifyPaymentRefs  bool   `mapstructure:"VERIFY_PAYMENT_REFS"`
	FirebaseCredFile   string `mapstructure:"FIREBASE_CRED_FILE"`
	ReminderLeadHours  int    `mapstructure:"REMINDER_LEAD_HOURS"`
	ReminderScanPeriod int    `mapstructure:"REMINDER_SCAN_PERIOD_MIN"`
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
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "consultly")
	viper.SetDefault("OPERATING_TIMEZONE", "Africa/Nairobi")
	viper.SetDefault("BOOKING_HORIZON_DAYS", 7)
	viper.SetDefault("FALLBACK_DAY_START", 9*60)
	viper.SetDefault("FALLBACK_DAY_END", 17*60)
	viper.SetDefault("FALLBACK_DAYS", []int{1, 2, 3, 4, 5})
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_QUEUE_DB", 3)
	viper.SetDefault("CALENDAR_CACHE_TTL_SECONDS", 600)
	viper.SetDefault("VERIFY_PAYMENT_REFS", false)
	viper.SetDefault("REMINDER_LEAD_HOURS", 24)
	viper.SetDefault("REMINDER_SCAN_PERIOD_MIN", 15)

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

// OperatingLocation resolves the configured operating timezone. A bad zone
// name is a deployment error, so it is fatal at startup but falls back to UTC
// for callers that race initialization.
func OperatingLocation() *time.Location {
	loc, err := time.LoadLocation(AppConfig.OperatingTimezone)
	if err != nil {
		log.Printf("invalid OPERATING_TIMEZONE %q, falling back to UTC: %v", AppConfig.OperatingTimezone, err)
		return time.UTC
	}
	return loc
}

// FallbackWeekdays converts the configured fallback day numbers to weekdays.
func FallbackWeekdays() []time.Weekday {
	days := make([]time.Weekday, 0, len(AppConfig.FallbackDays))
	for _, d := range AppConfig.FallbackDays {
		if d >= 0 && d <= 6 {
			days = append(days, time.Weekday(d))
		}
	}
	return days
}
