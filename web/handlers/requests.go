package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// RequestsSubmit submits a trade request against a post
func RequestsSubmit(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		postID, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		var req models.SubmitRequestBody
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		request, err := webApp.Offers.Submit(c.Context(), postID, traderID,
			req.OfferedCardID, req.RequestedCardID, req.Message)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendCreated(c, request, "Trade request submitted")
	}
}

// RequestsForPost lists the requests against one of the trader's posts
func RequestsForPost(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		postID, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		if ok, resp := requirePostOwner(c, webApp, postID, traderID); !ok {
			return resp
		}

		requests, err := webApp.Requests.GetByPost(c.Context(), postID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, requests, "")
	}
}

// RequestsMine lists the requests the trader has submitted
func RequestsMine(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		requests, err := webApp.Requests.GetByRequester(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, requests, "")
	}
}

// RequestsAccept accepts a pending request, closing the post to all others
// and opening a negotiation with the winner
func RequestsAccept(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		requestID, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid request ID", nil)
		}

		negotiation, err := webApp.Offers.Accept(c.Context(), requestID, traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendCreated(c, negotiation, "Trade request accepted")
	}
}

// RequestsDecline declines a pending request
func RequestsDecline(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		requestID, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid request ID", nil)
		}

		if err := webApp.Offers.Decline(c.Context(), requestID, traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": requestID}, "Trade request declined")
	}
}

// LimitsRemaining reports how many posts and requests the trader can
// still create today
func LimitsRemaining(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		posts, err := webApp.Limiter.RemainingPosts(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		requests, err := webApp.Limiter.RemainingRequests(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{
			"remaining_posts":    posts,
			"remaining_requests": requests,
		}, "")
	}
}
