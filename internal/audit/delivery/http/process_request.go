package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/model"
	"portal-srv/pkg/scope"
)

func (h *handler) processListLogsRequest(c *gin.Context) (listLogsReq, model.Scope, error) {
	var req listLogsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.processListLogsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
