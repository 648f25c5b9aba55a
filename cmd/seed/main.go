// Command seed imports the card catalog dump into Postgres.
//
//	seed -config config.toml -cards data/cards.json
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/pockettcg/tradehub/tradehub"
	"github.com/pockettcg/tradehub/tradehub/database"
	"github.com/pockettcg/tradehub/tradehub/logger"
	"github.com/pockettcg/tradehub/tradehub/seed"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	cardsPath := flag.String("cards", "data/cards.json", "path to the catalog JSON dump")
	batchSize := flag.Int("batch", 0, "override insert batch size")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := tradehub.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(logger.NewHandler("Seed", cfg.Log.Level)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DB)
	cancel()
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	err = db.InitializeSchema(ctx)
	cancel()
	if err != nil {
		slog.Error("Failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	seeder := seed.NewSeeder(db.BunDB())
	if *batchSize > 0 {
		seeder.SetBatchSize(*batchSize)
	}

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	stats, err := seeder.ImportCards(ctx, *cardsPath)
	if err != nil {
		slog.Error("Catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("Done",
		slog.Int("imported", stats.Imported),
		slog.Int("skipped", stats.Skipped))
}
