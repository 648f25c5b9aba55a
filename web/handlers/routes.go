package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pockettcg/tradehub/web/middleware"
	"github.com/pockettcg/tradehub/web/utils"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App, webApp *WebApp, jwtService *utils.JWTService) {
	app.Get("/health", HealthCheck(webApp))

	auth := app.Group("/auth")
	auth.Post("/login", middleware.RateLimit(10, time.Minute), Login(webApp, jwtService))
	auth.Post("/register", middleware.RateLimit(5, time.Minute), Register(webApp, jwtService))

	api := app.Group("/api", middleware.APIRateLimit(), middleware.AuthRequired(jwtService))

	api.Get("/me", Me(webApp))
	api.Get("/stats", HubStatsHandler(webApp))
	api.Get("/limits", LimitsRemaining(webApp))

	cards := api.Group("/cards")
	cards.Get("/search", CardsSearch(webApp))
	cards.Get("/:id", CardsDetail(webApp))

	posts := api.Group("/posts")
	posts.Get("/", PostsList(webApp))
	posts.Get("/mine", PostsMine(webApp))
	posts.Post("/", PostsCreate(webApp))
	posts.Get("/:id", PostsDetail(webApp))
	posts.Patch("/:id/hidden", PostsSetHidden(webApp))
	posts.Post("/:id/cancel", PostsCancel(webApp))
	posts.Get("/:id/requests", RequestsForPost(webApp))
	posts.Post("/:id/requests", RequestsSubmit(webApp))

	requests := api.Group("/requests")
	requests.Get("/mine", RequestsMine(webApp))
	requests.Post("/:id/accept", RequestsAccept(webApp))
	requests.Post("/:id/decline", RequestsDecline(webApp))

	negotiations := api.Group("/negotiations")
	negotiations.Get("/", NegotiationsMine(webApp))
	negotiations.Get("/:id", NegotiationsDetail(webApp))
	negotiations.Get("/:id/messages", MessagesList(webApp))
	negotiations.Post("/:id/messages", MessagesSend(webApp))
	negotiations.Post("/:id/messages/image", middleware.UploadRateLimit(), MessagesUpload(webApp))
	negotiations.Post("/:id/messages/read", MessagesMarkRead(webApp))
	negotiations.Get("/:id/messages/unread", MessagesUnreadCount(webApp))
	negotiations.Post("/:id/confirm", NegotiationsConfirm(webApp))
	negotiations.Post("/:id/unconfirm", NegotiationsUnconfirm(webApp))
	negotiations.Post("/:id/cancel", NegotiationsCancel(webApp))

	presence := api.Group("/presence")
	presence.Post("/heartbeat", middleware.HeartbeatRateLimit(), PresenceHeartbeat(webApp))
	presence.Post("/offline", PresenceOffline(webApp))
	presence.Get("/:traderID", PresenceStatus(webApp))

	admin := api.Group("/admin", middleware.AdminRequired())
	admin.Get("/settings", SettingsGet(webApp))
	admin.Put("/settings", middleware.AuditLogMiddleware("settings_update"), SettingsUpdate(webApp))
	admin.Patch("/posts/:id/status", middleware.AuditLogMiddleware("post_status_override"), PostsSetStatus(webApp))
	admin.Delete("/posts/:id", middleware.AuditLogMiddleware("post_delete"), PostsDelete(webApp))
	admin.Post("/posts/bulk-delete", middleware.AuditLogMiddleware("post_bulk_delete"), PostsBulkDelete(webApp))
}
