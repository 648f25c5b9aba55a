package handlers

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/pockettcg/tradehub/tradehub/database/models"
	"github.com/pockettcg/tradehub/web/models"
	"github.com/pockettcg/tradehub/web/utils"
)

// maxAttachmentSize bounds chat image uploads
const maxAttachmentSize = 5 * 1024 * 1024

// NegotiationsMine lists the trader's negotiations
func NegotiationsMine(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		negotiations, err := webApp.Negotiations.ListForTrader(c.Context(), traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, negotiations, "")
	}
}

// NegotiationsDetail returns a single negotiation for a participant
func NegotiationsDetail(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		negotiation, err := webApp.Negotiations.GetByID(c.Context(), id, traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, negotiation, "")
	}
}

// MessagesList returns the chat history of a negotiation
func MessagesList(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		messages, err := webApp.Negotiations.Messages(c.Context(), id, traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, messages, "")
	}
}

// MessagesSend posts a text message into a negotiation
func MessagesSend(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		var req models.SendMessageRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		contentType := dbmodels.MessageContentType(req.ContentType)
		if req.ContentType == "" {
			contentType = dbmodels.MessageContentText
		}

		message, err := webApp.Negotiations.Send(c.Context(), id, traderID, req.Content, contentType)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendCreated(c, message, "Message sent")
	}
}

// MessagesUpload accepts an image attachment and posts it into the chat
func MessagesUpload(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		fileHeader, err := c.FormFile("image")
		if err != nil {
			return utils.SendBadRequest(c, "Missing image file", nil)
		}

		if fileHeader.Size > maxAttachmentSize {
			return utils.SendUnprocessableEntity(c, "Image too large (max 5MB)", nil)
		}

		mimeType := fileHeader.Header.Get("Content-Type")
		if !strings.HasPrefix(mimeType, "image/") {
			return utils.SendUnprocessableEntity(c, "Only image attachments are allowed", nil)
		}

		file, err := fileHeader.Open()
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to read upload")
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize+1))
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to read upload")
		}

		message, err := webApp.Negotiations.SendImage(c.Context(), id, traderID, mimeType, data)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendCreated(c, message, "Image sent")
	}
}

// MessagesMarkRead marks the counterparty's messages as read
func MessagesMarkRead(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		if err := webApp.Negotiations.MarkRead(c.Context(), id, traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id}, "Messages marked read")
	}
}

// MessagesUnreadCount reports how many counterparty messages are unread
func MessagesUnreadCount(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		count, err := webApp.Negotiations.UnreadCount(c.Context(), id, traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"unread": count}, "")
	}
}

// NegotiationsConfirm records the trader's completion confirmation.
// When both sides have confirmed, the trade completes and each trader
// earns a trade point.
func NegotiationsConfirm(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		completed, err := webApp.Negotiations.Confirm(c.Context(), id, traderID)
		if err != nil {
			return sendTradingError(c, err)
		}

		message := "Confirmation recorded"
		if completed {
			message = "Trade completed"
		}

		return utils.SendSuccess(c, fiber.Map{"id": id, "completed": completed}, message)
	}
}

// NegotiationsUnconfirm withdraws a confirmation before the trade completes
func NegotiationsUnconfirm(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		if err := webApp.Negotiations.Unconfirm(c.Context(), id, traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id}, "Confirmation withdrawn")
	}
}

// NegotiationsCancel abandons an active negotiation
func NegotiationsCancel(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		id, err := idParam(c, "id")
		if err != nil {
			return utils.SendBadRequest(c, "Invalid negotiation ID", nil)
		}

		if err := webApp.Negotiations.Cancel(c.Context(), id, traderID); err != nil {
			return sendTradingError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{"id": id}, "Negotiation cancelled")
	}
}
