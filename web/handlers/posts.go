package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/web/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// PostsList returns the visible trade board, newest first
func PostsList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "50"))
		offset, _ := strconv.Atoi(c.Query("offset", "0"))
		if limit <= 0 || limit > 200 {
			limit = 50
		}
		if offset < 0 {
			offset = 0
		}

		posts, err := webApp.PostsRepo.GetVisible(c.Context(), limit, offset)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, posts, "")
	}
}

// PostsMine returns the authenticated trader's own posts, hidden ones included
func PostsMine(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		posts, err := webApp.PostsRepo.GetByOwner(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, posts, "")
	}
}

// PostsDetail returns a single trade post
func PostsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		post, err := webApp.Posts.GetByID(c.Context(), id)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, post, "")
	}
}

// PostsCreate creates a new trade post for the authenticated trader
func PostsCreate(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req models.CreatePostRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		post, err := webApp.Posts.Create(c.Context(), traderID, req.HaveCards, req.WantCards, req.Note)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendCreated(c, post, "Trade post created")
	}
}

// PostsSetHidden toggles a post's board visibility
func PostsSetHidden(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		var req models.SetHiddenRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		if ok, resp := requirePostOwner(c, webApp, id, traderID); !ok {
			return resp
		}

		if err := webApp.Posts.SetHidden(c.Context(), id, req.Hidden); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id, "hidden": req.Hidden}, "Post visibility updated")
	}
}

// PostsSetStatus is the admin override for a post's lifecycle state
func PostsSetStatus(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		var req models.SetStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		status := dbmodels.TradePostStatus(req.Status)
		switch status {
		case dbmodels.TradePostActive, dbmodels.TradePostMatched,
			dbmodels.TradePostExpired, dbmodels.TradePostCancelled:
		default:
			return utils.SendUnprocessableEntity(c, "Unknown post status", map[string]string{
				"status": req.Status,
			})
		}

		if err := webApp.Posts.SetStatus(c.Context(), id, status); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id, "status": status}, "Post status updated")
	}
}

// PostsCancel lets the owner take down their own post
func PostsCancel(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		if ok, resp := requirePostOwner(c, webApp, id, traderID); !ok {
			return resp
		}

		if err := webApp.Posts.Cancel(c.Context(), id); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id}, "Post cancelled")
	}
}

// PostsDelete removes a post outright. Moderation-only; traders cancel
// instead so the row survives for their history.
func PostsDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid post ID", nil)
		}

		if err := webApp.Posts.Remove(c.Context(), id); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id}, "Post deleted")
	}
}

// PostsBulkDelete removes a batch of posts in one call
func PostsBulkDelete(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.BulkDeleteRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if len(req.IDs) == 0 {
			return utils.SendUnprocessableEntity(c, "No post IDs given", nil)
		}

		if err := webApp.Posts.BulkRemove(c.Context(), req.IDs); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"deleted": len(req.IDs)}, "Posts deleted")
	}
}

// requirePostOwner loads the post and rejects the request unless the
// acting trader owns it. When the check fails the response has already
// been written and the handler must return resp as-is.
func requirePostOwner(c *fiber.Ctx, webApp *WebApp, postID int64, traderID string) (bool, error) {
	post, err := webApp.Posts.GetByID(c.Context(), postID)
	if err != nil {
		return false, sendTradingError(c, err)
	}
	if post.OwnerID != traderID {
		return false, utils.SendForbidden(c, "Only the post owner can do that")
	}
	return true, nil
}
