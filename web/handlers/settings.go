package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// SettingsGet returns the current marketplace limits
func SettingsGet(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		settings, err := webApp.Settings.Get(c.Context())
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, settings, "")
	}
}

// SettingsUpdate tunes the marketplace limits. Zero-valued fields keep
// their current setting.
func SettingsUpdate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if req.MaxActivePostsPerDay < 0 || req.MaxCardsPerSide < 0 ||
			req.PostDurationHours < 0 || req.MaxRequestsPerDay < 0 {
			return utils.SendUnprocessableEntity(c, "Limits cannot be negative", nil)
		}

		settings, err := webApp.Settings.Get(c.Context())
		if err != nil {
			return sendTradingError(c, err)
		}

		if req.MaxActivePostsPerDay > 0 {
			settings.LimitTradePostPerTrader = req.MaxActivePostsPerDay
		}
		if req.MaxCardsPerSide > 0 {
			settings.LimitCardPerPost = req.MaxCardsPerSide
		}
		if req.PostDurationHours > 0 {
			settings.TradePostDurationHours = req.PostDurationHours
		}
		if req.MaxRequestsPerDay > 0 {
			settings.LimitRequestPerTraderPerDay = req.MaxRequestsPerDay
		}

		if err := webApp.Settings.Update(c.Context(), settings); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, settings, "Settings updated")
	}
}
