package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pockettcg/tradehub/tradehub"
	"github.com/pockettcg/tradehub/tradehub/catalog"
	"github.com/pockettcg/tradehub/tradehub/database"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/logger"
	"github.com/pockettcg/tradehub/tradehub/presence"
	"github.com/pockettcg/tradehub/tradehub/services"
	"github.com/pockettcg/tradehub/tradehub/sweeper"
	"github.com/pockettcg/tradehub/tradehub/trading"
	"github.com/pockettcg/tradehub/tradehub/utils"
	"github.com/pockettcg/tradehub/web/handlers"
	"github.com/pockettcg/tradehub/web/middleware"
	webutils "github.com/pockettcg/tradehub/web/utils"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// .env is optional; real deployments inject environment directly
	_ = godotenv.Load()

	cfg, err := tradehub.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	customHandler := logger.NewHandler("TradeHub", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting TradeHub",
		slog.String("version", version),
		slog.String("commit", commit))

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

	// Repositories
	traders := repositories.NewTraderRepository(db.BunDB())
	cards := repositories.NewCardRepository(db.BunDB())
	posts := repositories.NewTradePostRepository(db.BunDB())
	requests := repositories.NewTradeRequestRepository(db.BunDB())
	negotiations := repositories.NewNegotiationRepository(db.BunDB())
	messages := repositories.NewMessageRepository(db.BunDB())
	settings := repositories.NewSettingsRepository(db.BunDB())

	// Optional attachment storage for chat images
	var attachments trading.AttachmentStore
	if cfg.Spaces.Enabled {
		spacesService, err := services.NewSpacesService(
			cfg.Spaces.Key,
			cfg.Spaces.Secret,
			cfg.Spaces.Region,
			cfg.Spaces.Bucket,
			cfg.Spaces.Root,
		)
		if err != nil {
			slog.Error("Failed to initialize spaces", slog.String("error", err.Error()))
			os.Exit(1)
		}
		attachments = spacesService
	}

	// Optional cold archive for purged messages
	var archiver sweeper.Archiver
	var mongoClient *mongo.Client
	if cfg.Archive.Enabled {
		ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
		mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.Archive.URI))
		cancel()
		if err != nil {
			slog.Error("Failed to connect to archive", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			_ = mongoClient.Disconnect(context.Background())
		}()
		archiver = sweeper.NewMongoArchiver(mongoClient, cfg.Archive.Database, cfg.Archive.Collection)
	}

	// Domain services
	lookup := catalog.NewLookup(cards)
	limiter := trading.NewRateLimiter(posts, requests, settings)
	postManager := trading.NewPostManager(posts, settings, limiter, lookup)
	offerMatcher := trading.NewOfferMatcher(posts, requests, settings, limiter, lookup)
	negotiationService := trading.NewNegotiationService(negotiations, messages, attachments)
	tracker := presence.New(traders, time.Duration(cfg.Presence.OnlineTimeoutSeconds)*time.Second)

	// Background sweeps
	bpm := utils.NewBackgroundProcessManager()
	sw := sweeper.New(posts, messages, postManager, archiver, sweeper.Config{
		ExpiryInterval:   time.Duration(cfg.Sweeper.ExpiryIntervalMinutes) * time.Minute,
		PurgeInterval:    time.Duration(cfg.Sweeper.PurgeIntervalHours) * time.Hour,
		MessageRetention: time.Duration(cfg.Sweeper.MessageRetentionDays) * 24 * time.Hour,
	})
	sw.Start(bpm)

	// HTTP transport
	jwtService := webutils.NewJWTService(cfg.Server.JWTSecret)

	app := fiber.New(fiber.Config{
		AppName:      "TradeHub API",
		ServerHeader: "TradeHub",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.WebApp{
		DB:           db,
		Posts:        postManager,
		Offers:       offerMatcher,
		Negotiations: negotiationService,
		Limiter:      limiter,
		Presence:     tracker,
		Catalog:      lookup,
		Traders:      traders,
		Cards:        cards,
		PostsRepo:    posts,
		Requests:     requests,
		Settings:     settings,
		Version:      version,
	}

	handlers.SetupRoutes(app, webApp, jwtService)

	address := cfg.Server.Addr()
	logger.LogSystem("Starting server", slog.String("address", address))

	go func() {
		if err := app.Listen(address); err != nil {
			logger.LogError("Failed to start server", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.LogSystem("Shutting down...")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.LogError("Server shutdown error", err)
	}

	if err := bpm.Shutdown(10 * time.Second); err != nil {
		logger.LogError("Background shutdown error", err)
	}

	logger.LogSystem("Shutdown complete")
}
