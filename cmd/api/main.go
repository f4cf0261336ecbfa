package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/scholarship-go/internal/api/middleware"
	"github.com/linskybing/scholarship-go/internal/api/routes"
	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/config/db"
	"github.com/linskybing/scholarship-go/internal/cron"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/migrations"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/cache"
	"github.com/linskybing/scholarship-go/pkg/identity"
	"github.com/linskybing/scholarship-go/pkg/payment"
	"github.com/linskybing/scholarship-go/pkg/storage"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

// @title Scholarship API
// @version 1.0
// @description Scholarship listings, paid applications and reviews.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := utils.RegisterValidators(map[string][]string{
		"subject_category":     scholarship.SubjectCategories,
		"scholarship_category": scholarship.ScholarshipCategories,
		"degree":               scholarship.Degrees,
	}); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := repository.NewRepositories(db.DB)
	providers, limiter := buildProviders(ctx)
	services := application.New(repos, providers)

	if err := services.User.EnsureReservedAdmin(); err != nil {
		log.Printf("Warning: reserved admin not ensured: %v", err)
	}

	if config.RunBackgroundJobs {
		cron.StartCleanupTask(ctx, services, config.AuditRetentionDays)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.NewEngine()
	if err != nil {
		log.Fatalf("Invalid TRUSTED_PROXIES: %v", err)
	}

	routes.RegisterRoutes(router, services, repos, limiter)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
		<-sigChan
		log.Println("Shutdown signal")
		cancel()

		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Failed to start: %v", err)
	}
}

// buildProviders connects the optional external systems. Anything left
// unconfigured stays nil and the features relying on it report unavailable.
func buildProviders(ctx context.Context) (application.Providers, middleware.Limiter) {
	var p application.Providers
	var limiter middleware.Limiter = middleware.NewMemoryLimiter()

	if rdb := cache.NewRedisClient(config.RedisAddr, config.RedisPassword, config.RedisDB); rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("Warning: redis unavailable, using in-process cache: %v", err)
		} else {
			p.Cache = cache.NewRedisCache(rdb, "scholarship:")
			limiter = middleware.NewRedisLimiter(rdb)
			log.Println("Redis connected")
		}
	}

	if config.MidtransServerKey != "" {
		p.Gateway = payment.NewMidtransGateway(config.MidtransServerKey, config.MidtransClientKey, config.MidtransProduction)
	} else {
		log.Println("Warning: MIDTRANS_SERVER_KEY not set, paid checkouts are disabled")
	}

	if config.GoogleClientID != "" {
		p.Verifier = identity.NewGoogleVerifier(config.GoogleClientID)
	}

	if config.MinioEndpoint != "" {
		up, err := storage.NewMinioUploader(ctx, storage.MinioConfig{
			Endpoint:  config.MinioEndpoint,
			AccessKey: config.MinioAccessKey,
			SecretKey: config.MinioSecretKey,
			Bucket:    config.MinioBucket,
			UseSSL:    config.MinioUseSSL,
			PublicURL: config.MinioPublicURL,
		})
		if err != nil {
			log.Printf("Warning: image storage unavailable: %v", err)
		} else {
			p.Uploader = up
		}
	}

	return p, limiter
}
