package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/internal/scrape"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/config"
	"github.com/mwalsh-dev/statduel/pkg/database"
)

// One-shot operational commands, for cron-less environments and local work:
//
//	go run ./cmd/scrape scrape            run a full ingestion now
//	go run ./cmd/scrape migrate           apply schema migrations and exit
//	go run ./cmd/scrape generate [date]   build the game for a date (default today)
func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logrus.SetLevel(logrus.DebugLevel)

	db, err := database.NewConnection(cfg.DatabaseURL, true)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	switch os.Args[1] {
	case "migrate":
		if err := models.Migrate(db); err != nil {
			logrus.Fatalf("Migration failed: %v", err)
		}
		logrus.Info("Migrations applied")

	case "scrape":
		if err := models.Migrate(db); err != nil {
			logrus.Fatalf("Migration failed: %v", err)
		}
		if err := runScrape(cfg, db); err != nil {
			logrus.Fatalf("Ingestion failed: %v", err)
		}

	case "generate":
		if err := runGenerate(cfg, db, os.Args[2:]); err != nil {
			logrus.Fatalf("Game generation failed: %v", err)
		}

	default:
		usage()
		os.Exit(1)
	}
}

func runScrape(cfg *config.Config, db *database.DB) error {
	timeout, err := time.ParseDuration(cfg.ScrapeTimeout)
	if err != nil {
		timeout = 30 * time.Second
	}

	fetcher := scrape.NewFetcher(timeout, cfg.ScrapeRateLimit, cfg.BreakerThreshold, logrus.StandardLogger())
	pipeline := scrape.NewPipeline(db, fetcher, logrus.StandardLogger(), cfg.ScrapeSeason, cfg.ScrapePlayerCap)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	return pipeline.Run(ctx)
}

func runGenerate(cfg *config.Config, db *database.DB, args []string) error {
	location, err := time.LoadLocation(cfg.GameTimezone)
	if err != nil {
		return fmt.Errorf("invalid game timezone %q: %w", cfg.GameTimezone, err)
	}

	date := time.Now().In(location).Format("2006-01-02")
	if len(args) > 0 {
		if _, err := time.Parse("2006-01-02", args[0]); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD: %w", args[0], err)
		}
		date = args[0]
	}

	generator := services.NewGameGenerator(db, logrus.StandardLogger(), cfg.PlayersPerGame, cfg.CategoriesPerGame)
	game, err := generator.Generate(date)
	if err != nil {
		return err
	}

	logrus.Infof("Game %d ready for %s", game.ID, game.GameDate)
	return nil
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: scrape <scrape|migrate|generate> [date]")
}
