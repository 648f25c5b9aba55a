package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/utils"
)

// AuthRequired middleware ensures the request carries a valid bearer token
func AuthRequired(jwtService *utils.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			slog.Debug("Auth required: invalid token",
				slog.String("error", err.Error()),
				slog.String("path", c.Path()))
			return utils.SendUnauthorized(c, "Invalid or expired token")
		}

		c.Locals("traderID", claims.TraderID)
		c.Locals("isAdmin", claims.Admin)

		return c.Next()
	}
}

// AdminRequired middleware ensures the authenticated trader has admin privileges.
// It must run after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traderID, ok := utils.TraderID(c)
		if !ok {
			return utils.SendForbidden(c, "Access denied")
		}

		if !utils.IsAdmin(c) {
			slog.Warn("Admin required: trader lacks admin privileges",
				slog.String("trader_id", traderID),
				slog.String("path", c.Path()))
			return utils.SendForbidden(c, "Admin access required")
		}

		return c.Next()
	}
}

// extractBearerToken pulls the token out of the Authorization header
func extractBearerToken(c *fiber.Ctx) string {
	auth := c.Get("Authorization")
	if auth == "" {
		return ""
	}

	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
