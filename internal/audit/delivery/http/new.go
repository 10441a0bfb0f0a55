package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/audit"
	"portal-srv/internal/middleware"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      audit.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc audit.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	logs := r.Group("/audit-logs", mw.Auth())
	{
		logs.GET("", h.ListLogs)
	}
}
