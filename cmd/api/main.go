package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vipul160305/placetrack/internal/app"
	"github.com/Vipul160305/placetrack/internal/config"
	"github.com/Vipul160305/placetrack/internal/database"
	apphttp "github.com/Vipul160305/placetrack/internal/http"
	"github.com/Vipul160305/placetrack/internal/http/handlers"
	"github.com/Vipul160305/placetrack/internal/http/metrics"
	httpmw "github.com/Vipul160305/placetrack/internal/http/middleware"
	"github.com/Vipul160305/placetrack/internal/http/response"
	"github.com/Vipul160305/placetrack/internal/observability"
	"github.com/Vipul160305/placetrack/internal/repository/postgres"
	"github.com/Vipul160305/placetrack/internal/security"
	"github.com/Vipul160305/placetrack/internal/upload"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	jwtProvider := security.NewJWTProvider(cfg.JWTSecret)

	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	authService := app.NewAuthService(accountRepo, jwtProvider, logger, cfg.TokenTTL)
	accountService := app.NewAccountService(accountRepo)
	listingService := app.NewListingService(listingRepo, accountRepo)
	applicationService := app.NewApplicationService(applicationRepo, listingRepo, accountRepo)
	analyticsService := app.NewAnalyticsService(accountRepo, listingRepo, applicationRepo)

	var limiter httpmw.Limiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis url: %v", err)
		}
		limiter = httpmw.NewRedisLimiter(redis.NewClient(opts))
	} else {
		limiter = httpmw.NewRateLimiter()
	}

	authHandler := handlers.NewAuthHandler(authService, limiter)
	accountHandler := handlers.NewAccountHandler(accountService, uploadStore)
	listingHandler := handlers.NewListingHandler(listingService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, limiter)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	middleware := httpmw.NewAuthMiddleware(jwtProvider, accountRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        authHandler,
		AccountHandler:     accountHandler,
		ListingHandler:     listingHandler,
		ApplicationHandler: applicationHandler,
		AnalyticsHandler:   analyticsHandler,
		MetricsHandler:     handlers.NewMetricsHandler(collector),
		AuthMiddleware:     middleware,
		Metrics:            collector,
		UploadDir:          uploadStore.Dir(),
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
