package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/model"
	"portal-srv/pkg/scope"
)

func (h *handler) processBookAppointmentRequest(c *gin.Context) (bookAppointmentReq, model.Scope, error) {
	var req bookAppointmentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.processBookAppointmentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processListAppointmentsRequest(c *gin.Context) (listAppointmentsReq, model.Scope, error) {
	var req listAppointmentsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.processListAppointmentsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processCancelAppointmentRequest(c *gin.Context) (cancelAppointmentReq, model.Scope, error) {
	var req cancelAppointmentReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "appointment.delivery.http.processCancelAppointmentRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
