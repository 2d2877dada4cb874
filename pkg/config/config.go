package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Auth     AuthConfig
	Log      LogConfig
	Storage  StorageConfig
	Seed     SeedConfig
	Reminder ReminderConfig
	Telegram TelegramConfig
}

type AppConfig struct {
	Name         string
	Port         string
	Env          string
	AllowOrigins string // comma separated, empty allows any origin
}

// DatabaseConfig selects between postgres (production) and sqlite (local runs)
type DatabaseConfig struct {
	Driver     string // postgres, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
}

// RedisConfig backs the session store; empty URL keeps sessions in memory
type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

// NATSConfig for change events; empty URL disables publishing
type NATSConfig struct {
	URL string
}

type AuthConfig struct {
	Source          string // static, database
	Username        string
	Password        string
	PasswordHash    string
	SessionLifetime time.Duration
	CookieName      string
	CookieSecure    bool
	JWTSecret       string
	TokenLifetime   time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

type StorageConfig struct {
	Type          string // local, s3
	BasePath      string
	BaseURL       string
	MaxUploadSize int64
	S3            S3Config
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string
}

type SeedConfig struct {
	Enabled bool
}

type ReminderConfig struct {
	Enabled bool
	Cron    string
	Window  time.Duration
}

// TelegramConfig for due-task reminders; both fields are required to send
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

func LoadConfig() (*Config, error) {
	// .env is optional, plain environment variables work too
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	maxUploadSize, _ := strconv.ParseInt(getEnv("STORAGE_MAX_UPLOAD_SIZE", "5242880"), 10, 64) // 5MB

	config := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "Business Manager"),
			Port:         getEnv("APP_PORT", "8080"),
			Env:          getEnv("APP_ENV", "development"),
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		},
		Database: DatabaseConfig{
			Driver:     getEnv("DB_DRIVER", "postgres"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "bizmanager"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "bizmanager.db"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		NATS: NATSConfig{
			URL: getEnv("NATS_URL", ""),
		},
		Auth: AuthConfig{
			Source:          getEnv("AUTH_SOURCE", "static"),
			Username:        getEnv("AUTH_USERNAME", "admin"),
			Password:        getEnv("AUTH_PASSWORD", ""),
			PasswordHash:    getEnv("AUTH_PASSWORD_HASH", ""),
			SessionLifetime: getDuration("AUTH_SESSION_LIFETIME", 24*time.Hour),
			CookieName:      getEnv("AUTH_COOKIE_NAME", "bizmanager_session"),
			CookieSecure:    getEnv("AUTH_COOKIE_SECURE", "false") == "true",
			JWTSecret:       getEnv("JWT_SECRET", "change-me"),
			TokenLifetime:   getDuration("JWT_LIFETIME", 24*time.Hour),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   getEnv("LOG_COMPRESS", "true") == "true",
		},
		Storage: StorageConfig{
			Type:          getEnv("STORAGE_TYPE", "local"),
			BasePath:      getEnv("STORAGE_BASE_PATH", "./uploads"),
			BaseURL:       getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
			MaxUploadSize: maxUploadSize,
			S3: S3Config{
				Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
				AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
				SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
				Bucket:    getEnv("S3_BUCKET", "bizmanager"),
				UseSSL:    getEnv("S3_USE_SSL", "false") == "true",
				Region:    getEnv("S3_REGION", "auto"),
				PublicURL: getEnv("S3_PUBLIC_URL", ""),
			},
		},
		Seed: SeedConfig{
			Enabled: getEnv("SEED_DEMO_DATA", "true") == "true",
		},
		Reminder: ReminderConfig{
			Enabled: getEnv("REMINDER_ENABLED", "true") == "true",
			Cron:    getEnv("REMINDER_CRON", "*/15 * * * *"),
			Window:  getDuration("REMINDER_WINDOW", time.Hour),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			ChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

// getDuration accepts Go duration strings ("24h", "90m")
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
