package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	SQLitePath           string
	OwnerPhone           string // Only this number may drive the bot, empty = anyone
	BotPhone             string // Pair via code instead of QR when set
	Location             *time.Location
	NotificationsEnabled bool
	SchedulerTick        time.Duration
	MetricsAddr          string // Empty disables /metrics
	SendRatePerMin       int
	ReplyDelayMinMs      int  // Minimum delay before reply (milliseconds)
	ReplyDelayMaxMs      int  // Maximum delay before reply (milliseconds), 0 = use min as fixed
	ShowTyping           bool // Show typing indicator during delay
	LogLevel             string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	return Config{
		SQLitePath:           getenv("SQLITE_PATH", "./data/sparks.db"),
		OwnerPhone:           getenv("OWNER_PHONE", ""),
		BotPhone:             getenv("BOT_PHONE", ""),
		Location:             getenvLocation("TIMEZONE"),
		NotificationsEnabled: getenvBool("NOTIFICATIONS_ENABLED", true),
		SchedulerTick:        getenvDuration("SCHEDULER_TICK", 30*time.Second),
		MetricsAddr:          getenv("METRICS_ADDR", ""),
		SendRatePerMin:       getenvInt("SEND_RATE_PER_MIN", 20),
		ReplyDelayMinMs:      getenvInt("REPLY_DELAY_MIN_MS", 0),
		ReplyDelayMaxMs:      getenvInt("REPLY_DELAY_MAX_MS", 0),
		ShowTyping:           getenvBool("SHOW_TYPING", false),
		LogLevel:             getenv("LOG_LEVEL", "INFO"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}

func getenvLocation(key string) *time.Location {
	name := os.Getenv(key)
	if name == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown %s %q, falling back to local time: %v", key, name, err)
		return time.Local
	}
	return loc
}
