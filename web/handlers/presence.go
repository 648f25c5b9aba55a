package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/utils"
)

// PresenceHeartbeat records that the trader's client is alive
func PresenceHeartbeat(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		if err := webApp.Presence.Heartbeat(c.Context(), traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"online": true}, "")
	}
}

// PresenceOffline marks the trader as explicitly offline
func PresenceOffline(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		if err := webApp.Presence.SetOffline(c.Context(), traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"online": false}, "")
	}
}

// PresenceStatus reports whether another trader currently counts as online
func PresenceStatus(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		targetID := c.Params("traderID")
		if targetID == "" {
			return utils.SendBadRequest(c, "Missing trader ID", nil)
		}

		online, err := webApp.Presence.IsOnline(c.Context(), targetID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"trader_id": targetID, "online": online}, "")
	}
}
