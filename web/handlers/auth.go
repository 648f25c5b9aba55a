package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// LoginRequest is the credential pair the game client presents. The
// friend code doubles as a shared secret since the client already holds
// both from account setup.
type LoginRequest struct {
	TraderID   string `json:"trader_id"`
	FriendCode string `json:"friend_code"`
}

// RegisterRequest creates a trader profile for an account that has not
// used the trade hub before
type RegisterRequest struct {
	TraderID   string `json:"trader_id"`
	Username   string `json:"username"`
	FriendCode string `json:"friend_code"`
}

// Login issues a bearer token for a known trader
func Login(webApp *WebApp, jwtService *utils.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if req.TraderID == "" || req.FriendCode == "" {
			return utils.SendBadRequest(c, "Missing credentials", nil)
		}

		trader, err := webApp.Traders.GetByID(c.Context(), req.TraderID)
		if err != nil {
			// Do not distinguish unknown trader from bad friend code
			return utils.SendUnauthorized(c, "Invalid credentials")
		}

		if trader.FriendCode != req.FriendCode {
			return utils.SendUnauthorized(c, "Invalid credentials")
		}

		if trader.Status == dbmodels.TraderStatusBanned {
			return utils.SendForbidden(c, "Account is banned from trading")
		}

		token, err := jwtService.GenerateToken(trader.ID, trader.IsAdmin)
		if err != nil {
			slog.Error("Failed to sign token",
				slog.String("type", "error"),
				slog.String("trader_id", trader.ID),
				slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to issue token")
		}

		return utils.SendSuccess(c, fiber.Map{
			"token":  token,
			"trader": trader,
		}, "Logged in")
	}
}

// Register creates a trader profile and issues a first token
func Register(webApp *WebApp, jwtService *utils.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if req.TraderID == "" || req.Username == "" || req.FriendCode == "" {
			return utils.SendUnprocessableEntity(c, "Trader ID, username and friend code are required", nil)
		}

		trader := &dbmodels.Trader{
			ID:         req.TraderID,
			Username:   req.Username,
			FriendCode: req.FriendCode,
			Status:     dbmodels.TraderStatusActive,
		}

		if err := webApp.Traders.Create(c.Context(), trader); err != nil {
			return sendTradingError(c, err)
		}

		token, err := jwtService.GenerateToken(trader.ID, false)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to issue token")
		}

		return utils.SendCreated(c, fiber.Map{
			"token":  token,
			"trader": trader,
		}, "Trader registered")
	}
}

// Me returns the authenticated trader's own profile
func Me(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		trader, err := webApp.Traders.GetByID(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, trader, "")
	}
}
