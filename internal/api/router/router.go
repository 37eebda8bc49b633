package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/aliskhannn/jobden/internal/api/handlers/events"
	"github.com/aliskhannn/jobden/internal/api/handlers/notification"
	"github.com/aliskhannn/jobden/internal/api/handlers/ws"
	"github.com/aliskhannn/jobden/internal/api/respond"
	"github.com/aliskhannn/jobden/internal/config"
	"github.com/aliskhannn/jobden/internal/middlewares"
	"github.com/aliskhannn/jobden/pkg/token"
)

const version = "1.0.0"

// Handlers groups the HTTP handlers mounted by New.
type Handlers struct {
	Notifications *notification.Handler
	WebSocket     *ws.Handler
	Events        *events.Handler
}

func New(h Handlers, tokens *token.Manager, cfg *config.Config) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware(cfg.Server.AllowedOrigins))
	e.Use(middlewares.RequestID())
	e.Use(middlewares.ProcessTime())
	e.Use(middlewares.SecurityHeaders())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	e.GET("/health", func(c *ginext.Context) {
		respond.OK(c.Writer, map[string]string{"status": "healthy", "version": version})
	})

	api := e.Group("/api/v1")

	notifications := api.Group("/notifications", middlewares.JWTAuth(tokens))
	notifications.GET("", h.Notifications.List)
	notifications.GET("/unread-count", h.Notifications.UnreadCount)
	notifications.PUT("/mark-all-read", h.Notifications.MarkAllRead)
	notifications.PUT("/:id/read", h.Notifications.MarkRead)
	notifications.DELETE("/:id", h.Notifications.Delete)

	api.GET("/ws/notifications", h.WebSocket.Connect)
	api.GET("/ws/online-status", h.WebSocket.OnlineStatus)

	internal := api.Group("/internal", middlewares.InternalAuth(cfg.Auth.InternalToken))
	internal.POST("/events", h.Events.Create)

	return e
}
