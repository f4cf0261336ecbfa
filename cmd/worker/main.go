package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/config/db"
	"github.com/linskybing/scholarship-go/internal/cron"
	"github.com/linskybing/scholarship-go/internal/migrations"
	"github.com/linskybing/scholarship-go/internal/repository"
)

// worker runs the maintenance loops on their own, for deployments that set
// RUN_BACKGROUND_JOBS=false on the API replicas.
func main() {
	config.LoadConfig()
	db.Init()

	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, application.Providers{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cron.StartCleanupTask(ctx, services, config.AuditRetentionDays)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan
	log.Println("Shutdown signal")
}
