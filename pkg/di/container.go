package di

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"bizmanager/application/serviceimpl"
	"bizmanager/domain/ports"
	"bizmanager/domain/repositories"
	"bizmanager/domain/services"
	"bizmanager/infrastructure/database"
	"bizmanager/infrastructure/messaging"
	natspkg "bizmanager/infrastructure/nats"
	redispkg "bizmanager/infrastructure/redis"
	"bizmanager/infrastructure/storage"
	"bizmanager/infrastructure/telegram"
	"bizmanager/infrastructure/websocket"
	"bizmanager/interfaces/api/handlers"
	"bizmanager/interfaces/api/routes"
	"bizmanager/pkg/config"
	"bizmanager/pkg/logger"
	"bizmanager/pkg/scheduler"
)

const reminderJobID = "task-reminders"

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB           *gorm.DB
	RedisClient  *redispkg.Client // sessions; nil keeps them in memory
	NATSClient   *natspkg.Client  // change events; nil disables NATS publishing
	Storage      ports.StoragePort
	Hub          *websocket.Hub
	Publisher    ports.EventPublisher
	Notifier     ports.NotifierPort
	Sessions     *session.Store
	JobScheduler scheduler.JobScheduler

	// Repositories
	UserRepository          repositories.UserRepository
	TaskRepository          repositories.TaskRepository
	CalendarEventRepository repositories.CalendarEventRepository
	ContactRepository       repositories.ContactRepository
	CarRepository           repositories.CarRepository

	// Services
	AuthService     services.AuthService
	TaskService     services.TaskService
	CalendarService services.CalendarService
	ContactService  services.ContactService
	CarService      services.CarService
	ReminderService services.ReminderService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initSeed(); err != nil {
		return err
	}

	return c.initScheduler()
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded")
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	logLevel := gormlogger.Info
	if c.Config.IsProduction() {
		logLevel = gormlogger.Warn
	}

	db, err := database.NewDatabase(c.Config.Database, logLevel)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("Database migrated")

	// Redis is optional, sessions fall back to memory
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (in-memory sessions)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "url", c.Config.Redis.URL)
		}
	}
	c.initSessions()

	c.initEvents()

	if err := c.initStorage(); err != nil {
		return err
	}

	c.Notifier = telegram.NewTelegramNotifier(telegram.Config{
		BotToken: c.Config.Telegram.BotToken,
		ChatID:   c.Config.Telegram.ChatID,
	})
	if c.Notifier.IsEnabled() {
		logger.Info("Telegram notifier initialized")
	} else {
		logger.Info("Telegram notifier disabled (TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set)")
	}

	return nil
}

func (c *Container) initSessions() {
	cfg := session.Config{
		Expiration:     c.Config.Auth.SessionLifetime,
		KeyLookup:      "cookie:" + c.Config.Auth.CookieName,
		CookieHTTPOnly: true,
		CookieSecure:   c.Config.Auth.CookieSecure,
		CookieSameSite: "Lax",
	}
	if c.RedisClient != nil {
		cfg.Storage = redispkg.NewSessionStorage(c.RedisClient)
	}
	c.Sessions = session.New(cfg)
}

// initEvents wires the WebSocket hub and, when reachable, NATS behind one publisher
func (c *Container) initEvents() {
	c.Hub = websocket.NewHub()
	c.Hub.Start()
	logger.Info("WebSocket hub started")

	var natsPublisher ports.EventPublisher
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (events stay local)", "error", err)
		} else {
			c.NATSClient = natsClient
			natsPublisher = natspkg.NewPublisher(natsClient)
			logger.Info("NATS client initialized", "url", c.Config.NATS.URL)
		}
	}

	c.Publisher = messaging.NewFanout(c.Hub, natsPublisher)
}

func (c *Container) initStorage() error {
	switch c.Config.Storage.Type {
	case "s3":
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.Storage.S3.Endpoint,
			AccessKey: c.Config.Storage.S3.AccessKey,
			SecretKey: c.Config.Storage.S3.SecretKey,
			Bucket:    c.Config.Storage.S3.Bucket,
			UseSSL:    c.Config.Storage.S3.UseSSL,
			Region:    c.Config.Storage.S3.Region,
			PublicURL: c.Config.Storage.S3.PublicURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Storage.BasePath,
			BaseURL:  c.Config.Storage.BaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
	}

	logger.Info("Storage initialized", "provider", c.Storage.GetProviderName())
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepository = database.NewUserRepository(c.DB)
	c.TaskRepository = database.NewTaskRepository(c.DB)
	c.CalendarEventRepository = database.NewCalendarEventRepository(c.DB)
	c.ContactRepository = database.NewContactRepository(c.DB)
	c.CarRepository = database.NewCarRepository(c.DB)
	logger.Info("Repositories initialized")
}

func (c *Container) initServices() error {
	store, err := c.credentialStore()
	if err != nil {
		return err
	}
	c.AuthService = serviceimpl.NewAuthService(store, c.Config.Auth.JWTSecret, c.Config.Auth.TokenLifetime)
	logger.Info("Auth service initialized", "credential_store", store.Name())

	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository, c.Publisher)
	c.CalendarService = serviceimpl.NewCalendarService(c.CalendarEventRepository, c.Publisher)
	c.ContactService = serviceimpl.NewContactService(c.ContactRepository, c.Storage, c.Publisher, c.Config.Storage.MaxUploadSize)
	c.CarService = serviceimpl.NewCarService(c.CarRepository, c.Publisher)
	c.ReminderService = serviceimpl.NewReminderService(c.TaskRepository, c.Publisher, c.Notifier, c.Config.Reminder.Window)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) credentialStore() (ports.CredentialStore, error) {
	switch c.Config.Auth.Source {
	case "database":
		return serviceimpl.NewDatabaseCredentialStore(c.UserRepository), nil
	case "static", "":
		return serviceimpl.NewStaticCredentialStore(c.Config.Auth.Username, c.Config.Auth.Password, c.Config.Auth.PasswordHash)
	default:
		return nil, fmt.Errorf("unknown AUTH_SOURCE %q", c.Config.Auth.Source)
	}
}

func (c *Container) initSeed() error {
	if !c.Config.Seed.Enabled {
		logger.Info("Demo data seeding disabled")
		return nil
	}
	if err := database.Seed(context.Background(), c.DB, time.Now()); err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}
	return nil
}

func (c *Container) initScheduler() error {
	c.JobScheduler = scheduler.NewJobScheduler()

	if c.Config.Reminder.Enabled {
		err := c.JobScheduler.AddJob(reminderJobID, c.Config.Reminder.Cron, func() {
			ctx := context.Background()
			if _, err := c.ReminderService.RunOnce(ctx, time.Now()); err != nil {
				logger.Error("Reminder run failed", "error", err)
			}
		})
		if err != nil {
			return fmt.Errorf("failed to schedule reminders: %w", err)
		}
		logger.Info("Reminder job scheduled", "cron", c.Config.Reminder.Cron, "window", c.Config.Reminder.Window.String())
	}

	c.JobScheduler.Start()
	if info, ok := c.JobScheduler.GetJob(reminderJobID); ok && info.NextRun != nil {
		logger.Info("Next reminder run", "at", info.NextRun.Format(time.RFC3339))
	}
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.JobScheduler != nil && c.JobScheduler.IsRunning() {
		c.JobScheduler.Stop()
		logger.Info("Job scheduler stopped")
	}

	if c.Hub != nil {
		c.Hub.Stop()
		logger.Info("WebSocket hub stopped")
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		} else {
			logger.Info("NATS connection closed")
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		if err := database.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService:     c.TaskService,
		CalendarService: c.CalendarService,
		ContactService:  c.ContactService,
		CarService:      c.CarService,
		AuthService:     c.AuthService,
		Sessions:        c.Sessions,
	}
}

func (c *Container) GetRouteOptions() routes.Options {
	opts := routes.Options{
		Sessions:    c.Sessions,
		AuthService: c.AuthService,
		Hub:         c.Hub,
	}
	if c.Storage.GetProviderName() == "local" {
		opts.FilesRoot = c.Config.Storage.BasePath
	}

	opts.HealthChecks = map[string]routes.HealthCheck{
		"database": func(ctx context.Context) error { return database.Ping(ctx, c.DB) },
	}
	if c.RedisClient != nil {
		opts.HealthChecks["redis"] = c.RedisClient.Ping
	}
	return opts
}
