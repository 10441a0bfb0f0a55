package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/middleware"
	"portal-srv/internal/patient"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      patient.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc patient.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	patients := r.Group("/patients", mw.Auth())
	{
		patients.GET("/exists", h.Exists)
		patients.GET("/family", h.Family)
		patients.GET("/profile", h.GetProfile)
		patients.PUT("/profile", h.UpdateProfile)
	}
}
