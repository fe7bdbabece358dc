package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel/cfg"
	"travel/internal/airport"
	"travel/internal/budget"
	"travel/internal/flight"
	"travel/internal/session"
	"travel/pkg/cache"
	"travel/pkg/db"
	"travel/pkg/flightclient"
	"travel/pkg/idgen"
	"travel/pkg/logger"

	_ "travel/cmd/travel/docs" // swagger docs

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// @title           Travel API
// @version         1.0
// @description     Flight search with filters, quick filters, ranking and badges, plus trip budget planning and session profiles.
// @BasePath        /
// @schemes         http
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ============
	// config
	// ============
	config, errCfg := cfg.Load()
	if errCfg != nil {
		log.Fatal(errCfg)
	}

	// ============
	// logger
	// ============
	zlogger := logger.NewZeroLog(config.AppEnv)

	// ============
	// Otel
	// ============
	shutdownOtel, err := initOtel(ctx, &config.Observability)
	if err != nil {
		zlogger.Warn("continuing without tracing/metrics", logger.Err(err))
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownOtel(ctx); err != nil {
				zlogger.Error("failed to shutdown OpenTelemetry", logger.Err(err))
			}
		}()
	}

	// ============
	// Cache
	// ============
	redisAddr := config.Redis.Host + ":" + config.Redis.Port
	redis := cache.NewRedisCache(redisAddr, config.Redis.Password)
	if err := cache.Ping(ctx, redis); err != nil {
		zlogger.Warn("redis unreachable at startup", logger.Err(err), logger.Field{Key: "addr", Value: redisAddr})
	}

	// ============
	// Database
	// ============
	pg := config.Postgres
	pgDSN := db.PostgresConfig{
		Host:     pg.Host,
		Port:     pg.Port,
		User:     pg.User,
		Password: pg.Password,
		DBName:   pg.DBName,
		SSLMode:  pg.SSLMode,
	}.DSN()
	sqlClient, err := db.NewSQLClient(ctx, "postgres", pgDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlClient.Close()

	ids, err := idgen.NewSnowflakeGenerator(config.SnowflakeNodeID)
	if err != nil {
		log.Fatal(err)
	}

	// ============
	// External Service
	// ============
	httpClient := &http.Client{
		Timeout: time.Duration(config.Amadeus.TimeoutSeconds) * time.Second,
	}
	amadeusClient := flightclient.NewAmadeusClient(httpClient, config.Amadeus.BaseURL,
		config.Amadeus.ClientID, config.Amadeus.ClientSecret, zlogger)

	// ============
	// Internal Service
	// ============
	flightSvc := flight.NewService(amadeusClient, redis, config.CacheTTLMinutes, zlogger)
	flightHandler := flight.NewFlightHandler(flightSvc)

	airportSvc := airport.NewService(amadeusClient, redis, config.CacheTTLMinutes, zlogger)
	airportHandler := airport.NewAirportHandler(airportSvc)

	sessionMgr := session.NewManager(session.NewStore(redis, config.SessionTTLMinutes), zlogger)
	sessionHandler := session.NewSessionHandler(sessionMgr)

	budgetSvc := budget.NewService(budget.DefaultCatalog(), budget.NewRepository(sqlClient), ids, zlogger)
	budgetHandler := budget.NewBudgetHandler(budgetSvc, sessionMgr, zlogger)

	// ============
	// HTTP
	// ============
	if config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(config.Observability.ServiceName))
	r.Use(TraceLoggerMiddleware(zlogger))

	flightHandler.RegisterRoutes(r)
	airportHandler.RegisterRoutes(r)
	budgetHandler.RegisterRoutes(r)
	sessionHandler.RegisterRoutes(r)
	initSwagger(r)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", session.Header},
		ExposedHeaders:   []string{session.Header},
		AllowCredentials: false,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", config.AppPort),
		Handler:           corsHandler.Handler(r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlogger.Info("http server listening", logger.Field{Key: "addr", Value: srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	zlogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlogger.Error("graceful shutdown failed", logger.Err(err))
	}
}

func initSwagger(r *gin.Engine) {
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		html := `<!DOCTYPE html>
<html>
<head>
    <title>Travel API Documentation</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <script id="api-reference" data-url="/swagger/doc.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.String(http.StatusOK, html)
	})
}
