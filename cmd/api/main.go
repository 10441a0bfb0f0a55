package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portal-srv/config"
	configKafka "portal-srv/config/kafka"
	configMinio "portal-srv/config/minio"
	configMongo "portal-srv/config/mongo"
	configPostgre "portal-srv/config/postgre"
	configRabbit "portal-srv/config/rabbitmq"
	configRedis "portal-srv/config/redis"
	_ "portal-srv/docs" // Import swagger docs
	"portal-srv/internal/httpserver"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/encrypter"
	"portal-srv/pkg/hissrv"
	pkgHTTP "portal-srv/pkg/http"
	pkgJWT "portal-srv/pkg/jwt"
	"portal-srv/pkg/log"
)

// @title       HCMUT Patient Portal API
// @description Hospital portal report-access service API documentation.
// @version     1
// @BasePath    /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	// 4. Initialize encrypter
	encrypterInstance := encrypter.New(cfg.Encrypter.Key)

	ctx := context.Background()

	// 5. Initialize PostgreSQL (audit trail)
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 6. Initialize MongoDB (patients, appointments)
	mongoDB, err := configMongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer configMongo.Disconnect(ctx)
	logger.Infof(ctx, "MongoDB connected successfully to %s", cfg.Mongo.DBName)

	// 7. Initialize Redis (patient lookup cache)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 8. Initialize MinIO (report storage)
	minioClient, err := configMinio.Connect(ctx, &cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s", cfg.MinIO.Endpoint)

	// 9. Initialize Kafka producer (report action events)
	producer, err := configKafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		logger.Error(ctx, "Failed to connect Kafka producer: ", err)
		return
	}
	defer configKafka.DisconnectProducer()
	logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)

	// 10. Initialize RabbitMQ (appointment reminders)
	rabbitConn, err := configRabbit.Connect(cfg.RabbitMQ)
	if err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer configRabbit.Disconnect()
	logger.Info(ctx, "RabbitMQ connected successfully")

	// 11. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 12. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 13. Initialize HIS gateway client
	hisClient := hissrv.New(hissrv.HISConfig{
		BaseURL: cfg.HIS.URL,
		APIKey:  cfg.HIS.APIKey,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout:   10 * time.Second,
			Retries:   2,
			RetryWait: time.Second,
		}),
	})
	logger.Infof(ctx, "HIS gateway client initialized for %s", cfg.HIS.URL)

	// 14. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Database Configuration
		PostgresDB:  postgresDB,
		MongoDB:     mongoDB,
		RedisClient: redisClient,

		// Storage Configuration
		MinIO: minioClient,

		// Messaging Configuration
		Producer:   producer,
		RabbitConn: rabbitConn,

		// Authentication & Security Configuration
		Config:       cfg,
		JWTManager:   jwtManager,
		CookieConfig: cfg.Cookie,
		Encrypter:    encrypterInstance,

		// Upstream Configuration
		HIS: hisClient,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
