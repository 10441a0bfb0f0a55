package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"portal-srv/config"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/encrypter"
	"portal-srv/pkg/hissrv"
	pkgJWT "portal-srv/pkg/jwt"
	"portal-srv/pkg/kafka"
	"portal-srv/pkg/log"
	pkgMinio "portal-srv/pkg/minio"
	"portal-srv/pkg/rabbitmq"
	pkgRedis "portal-srv/pkg/redis"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Database Configuration
	postgresDB  *sql.DB
	mongoDB     *mongo.Database
	redisClient pkgRedis.IRedis

	// Storage Configuration
	minio pkgMinio.MinIO

	// Messaging Configuration
	producer   kafka.IProducer
	rabbitConn rabbitmq.IRabbitMQ

	// Authentication & Security Configuration
	config       *config.Config
	jwtManager   *pkgJWT.Manager
	cookieConfig config.CookieConfig
	encrypter    encrypter.Encrypter

	// Upstream Configuration
	his hissrv.IHIS

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Database Configuration
	PostgresDB  *sql.DB
	MongoDB     *mongo.Database
	RedisClient pkgRedis.IRedis

	// Storage Configuration
	MinIO pkgMinio.MinIO

	// Messaging Configuration
	Producer   kafka.IProducer
	RabbitConn rabbitmq.IRabbitMQ

	// Authentication & Security Configuration
	Config       *config.Config
	JWTManager   *pkgJWT.Manager
	CookieConfig config.CookieConfig
	Encrypter    encrypter.Encrypter

	// Upstream Configuration
	HIS hissrv.IHIS

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		mongoDB:     cfg.MongoDB,
		redisClient: cfg.RedisClient,

		minio: cfg.MinIO,

		producer:   cfg.Producer,
		rabbitConn: cfg.RabbitConn,

		config:       cfg.Config,
		jwtManager:   cfg.JWTManager,
		cookieConfig: cfg.CookieConfig,
		encrypter:    cfg.Encrypter,

		his: cfg.HIS,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.mongoDB == nil {
		return errors.New("mongoDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.minio == nil {
		return errors.New("minio is required")
	}
	if srv.producer == nil {
		return errors.New("producer is required")
	}
	if srv.rabbitConn == nil {
		return errors.New("rabbitConn is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.his == nil {
		return errors.New("his is required")
	}

	return nil
}
