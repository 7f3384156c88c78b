package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/internal/repository"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/config"
	"github.com/naimkhanrahman00-bit/uiu-social-network-sub001/pkg/database"
)

// Marks lost and found posts past their expiry as removed. Intended to run
// from cron; the API itself never mutates posts in the background.
func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "Report what would expire without writing")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if dryRun {
		var pending int
		if err := db.GetContext(ctx, &pending, `SELECT COUNT(*) FROM lost_found_posts WHERE status <> 'removed' AND expires_at IS NOT NULL AND expires_at < $1`, now); err != nil {
			log.Fatalf("count expirable posts: %v", err)
		}
		log.Printf("dry run: %d posts would be expired", pending)
		return
	}

	contentRepo := repository.NewContentRepository(db)
	expired, err := contentRepo.ExpireLostFound(ctx, now)
	if err != nil {
		log.Fatalf("expire posts: %v", err)
	}
	log.Printf("expired %d lost and found posts", expired)
}
