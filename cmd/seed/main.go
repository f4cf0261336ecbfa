package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/linskybing/scholarship-go/internal/application"
	"github.com/linskybing/scholarship-go/internal/config"
	"github.com/linskybing/scholarship-go/internal/config/db"
	"github.com/linskybing/scholarship-go/internal/domain/scholarship"
	"github.com/linskybing/scholarship-go/internal/migrations"
	"github.com/linskybing/scholarship-go/internal/repository"
	"github.com/linskybing/scholarship-go/pkg/utils"
)

func main() {
	file := flag.String("file", "seeds/scholarships.yaml", "seed file (YAML list or multi-document)")
	flag.Parse()

	config.LoadConfig()
	db.Init()
	if err := migrations.Run(db.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *file, err)
	}
	records, err := utils.DecodeYAMLDocuments[scholarship.SeedRecord](string(raw))
	if err != nil {
		log.Fatalf("Failed to parse %s: %v", *file, err)
	}

	repos := repository.NewRepositories(db.DB)
	services := application.New(repos, application.Providers{})

	if err := services.User.EnsureReservedAdmin(); err != nil {
		log.Fatalf("Failed to ensure reserved admin: %v", err)
	}

	now := time.Now()
	var created, updated int
	for _, rec := range records {
		sc, err := rec.ToModel(now)
		if err != nil {
			log.Fatalf("Invalid seed record: %v", err)
		}
		_, isNew, err := services.Scholarship.Upsert(sc)
		if err != nil {
			log.Fatalf("Failed to upsert %q: %v", sc.Name, err)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	log.Printf("Seeded %d scholarships (%d created, %d updated)", len(records), created, updated)
}
