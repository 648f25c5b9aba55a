package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/tradehub/catalog"
	"github.com/pockettcg/tradehub/tradehub/database"
	"github.com/pockettcg/tradehub/tradehub/database/repositories"
	"github.com/pockettcg/tradehub/tradehub/presence"
	"github.com/pockettcg/tradehub/tradehub/trading"
	"github.com/pockettcg/tradehub/web/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	DB           *database.DB
	Posts        *trading.PostManager
	Offers       *trading.OfferMatcher
	Negotiations *trading.NegotiationService
	Limiter      *trading.RateLimiter
	Presence     *presence.Tracker
	Catalog      *catalog.Lookup
	Traders      repositories.TraderRepository
	Cards        repositories.CardRepository
	PostsRepo    repositories.TradePostRepository
	Requests     repositories.TradeRequestRepository
	Settings     repositories.SettingsRepository
	Version      string
}

// parseInt64 is a utility function to parse int64 from string
func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// idParam extracts a numeric :id route parameter
func idParam(c *fiber.Ctx, name string) (int64, error) {
	return parseInt64(c.Params(name))
}

// sendTradingError maps a trading failure onto the HTTP taxonomy.
// State conflicts are expected under concurrency and logged at debug only.
func sendTradingError(c *fiber.Ctx, err error) error {
	var terr *trading.Error
	if errors.As(err, &terr) {
		switch terr.Kind {
		case trading.KindValidation:
			return utils.SendUnprocessableEntity(c, terr.Message, nil)
		case trading.KindRateLimit:
			return utils.SendTooManyRequests(c, terr.Message)
		case trading.KindAuthorization:
			return utils.SendForbidden(c, terr.Message)
		case trading.KindState:
			slog.Debug("Trading state conflict",
				slog.String("path", c.Path()),
				slog.String("error", terr.Message))
			return utils.SendConflict(c, terr.Message, nil)
		case trading.KindNotFound:
			return utils.SendNotFound(c, terr.Message)
		}
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return utils.SendNotFound(c, "Resource not found")
	}

	slog.Error("Unhandled trading error",
		slog.String("type", "error"),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()))
	return utils.SendInternalServerError(c, "Something went wrong")
}

// HealthCheck returns the service health status
func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(webApp.Version)

		if webApp.DB == nil {
			health.AddComponent("database", "unhealthy", "not initialized")
		} else if err := webApp.DB.Ping(c.Context()); err != nil {
			health.AddComponent("database", "unhealthy", err.Error())
		} else {
			health.AddComponent("database", "healthy", "")
		}

		status := fiber.StatusOK
		if health.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}

		return c.Status(status).JSON(health)
	}
}

// HubStatsHandler returns marketplace totals for the dashboard
func HubStatsHandler(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()

		traders, err := webApp.Traders.GetTraderCount(ctx)
		if err != nil {
			return sendTradingError(c, err)
		}

		cards, err := webApp.Cards.GetCardCount(ctx)
		if err != nil {
			return sendTradingError(c, err)
		}

		active, err := webApp.PostsRepo.CountActive(ctx)
		if err != nil {
			return sendTradingError(c, err)
		}

		stats := models.HubStats{
			TotalTraders: int64(traders),
			TotalCards:   int64(cards),
			ActivePosts:  active,
		}

		return utils.SendSuccess(c, stats, "")
	}
}
