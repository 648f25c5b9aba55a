package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/utils"
)

// CardsDetail returns a single card from the catalog
func CardsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cardID := c.Params("id")
		if cardID == "" {
			return utils.SendBadRequest(c, "Missing card ID", nil)
		}

		cards, err := webApp.Catalog.Resolve(c.Context(), []string{cardID})
		if err != nil {
			return sendTradingError(c, err)
		}
		if len(cards) == 0 {
			return utils.SendNotFound(c, "Card not found")
		}

		return utils.SendSuccess(c, cards[0], "")
	}
}

// CardsSearch does a fuzzy name search over the catalog
func CardsSearch(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")
		if query == "" {
			return utils.SendBadRequest(c, "Missing search query", nil)
		}

		limit, _ := strconv.Atoi(c.Query("limit", "20"))
		if limit <= 0 || limit > 100 {
			limit = 20
		}

		cards, err := webApp.Catalog.SearchByName(c.Context(), query, limit)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, cards, "")
	}
}
