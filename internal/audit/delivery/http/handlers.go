package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/pkg/response"
)

// @Summary List audit logs
// @Description Page through the archive/delete audit trail; staff only
// @Tags Audit
// @Produce json
// @Param patient_id query string false "Filter by patient ID"
// @Param action query string false "Filter by action (ARCHIVE or DELETE)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listLogsResp
// @Failure 403 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/audit-logs [get]
func (h *handler) ListLogs(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListLogsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.ListLogs: processListLogsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "audit.delivery.http.ListLogs: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListLogsResp(o))
}
