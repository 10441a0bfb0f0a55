package httpserver

import (
	"context"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appointmenthttp "portal-srv/internal/appointment/delivery/http"
	appointmentMongo "portal-srv/internal/appointment/repository/mongo"
	appointmentusecase "portal-srv/internal/appointment/usecase"
	audithttp "portal-srv/internal/audit/delivery/http"
	auditPostgre "portal-srv/internal/audit/repository/postgre"
	auditusecase "portal-srv/internal/audit/usecase"
	"portal-srv/internal/middleware"
	patienthttp "portal-srv/internal/patient/delivery/http"
	patientMongo "portal-srv/internal/patient/repository/mongo"
	patientRedis "portal-srv/internal/patient/repository/redis"
	patientusecase "portal-srv/internal/patient/usecase"
	reporthttp "portal-srv/internal/report/delivery/http"
	reportMinio "portal-srv/internal/report/repository/minio"
	reportusecase "portal-srv/internal/report/usecase"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cookieConfig)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	// Initialize repositories
	auditRepo := auditPostgre.New(srv.postgresDB, srv.l)
	reportRepo := reportMinio.New(srv.minio, srv.l, srv.config.Report.Bucket)
	patientRepo := patientRedis.New(srv.l, srv.redisClient, patientMongo.New(srv.l, srv.mongoDB, srv.encrypter))
	appointmentRepo := appointmentMongo.New(srv.l, srv.mongoDB)

	// Initialize usecases
	auditUC := auditusecase.New(auditRepo, srv.l)
	reportUC := reportusecase.New(reportRepo, auditUC, srv.producer, srv.l, reportusecase.Config{
		MintTTL:    time.Duration(srv.config.Report.MintTTL) * time.Second,
		RenewalTTL: time.Duration(srv.config.Report.RenewalTTL) * time.Second,
	})
	patientUC := patientusecase.New(srv.l, patientRepo, srv.his)
	appointmentUC := appointmentusecase.New(srv.l, appointmentRepo, srv.rabbitConn, appointmentusecase.Config{
		ReminderQueue: srv.config.RabbitMQ.ReminderQueue,
	})

	// Initialize HTTP handlers
	reportHandler := reporthttp.New(srv.l, reportUC, srv.discord)
	patientHandler := patienthttp.New(srv.l, patientUC, srv.discord)
	appointmentHandler := appointmenthttp.New(srv.l, appointmentUC, srv.discord)
	auditHandler := audithttp.New(srv.l, auditUC, srv.discord)

	api := srv.gin.Group("/api/v1")
	reportHandler.RegisterRoutes(api, mw)
	patientHandler.RegisterRoutes(api, mw)
	appointmentHandler.RegisterRoutes(api, mw)
	auditHandler.RegisterRoutes(api, mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	// Log CORS mode for visibility
	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive - allows localhost)", srv.environment)
	}

	// Add locale middleware to extract and set locale from request header
	srv.gin.Use(mw.Locale())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
