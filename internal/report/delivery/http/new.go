package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/middleware"
	"portal-srv/internal/report"
	"portal-srv/pkg/discord"
	"portal-srv/pkg/log"
)

type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      report.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc report.UseCase, discord discord.IDiscord) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	reports := r.Group("/reports", mw.Auth())
	{
		reports.GET("", h.ListReports)
		reports.POST("/regenerate-signed-url", h.RegenerateURL)
		reports.POST("/view", h.ViewReport)
		reports.POST("/download", h.DownloadReport)
		reports.POST("/share", h.ShareReport)
		reports.POST("/archive", h.ArchiveReport)
		reports.POST("/delete", h.DeleteReport)
		reports.POST("/upload", h.UploadReport)
	}
}
