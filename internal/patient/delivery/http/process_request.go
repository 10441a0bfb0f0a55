package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/model"
	"portal-srv/pkg/scope"
)

func (h *handler) processExistsRequest(c *gin.Context) (existsReq, model.Scope, error) {
	var req existsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.processExistsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processFamilyRequest(c *gin.Context) (familyReq, model.Scope, error) {
	var req familyReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.processFamilyRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processGetProfileRequest(c *gin.Context) (profileReq, model.Scope, error) {
	var req profileReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.processGetProfileRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUpdateProfileRequest(c *gin.Context) (updateProfileReq, model.Scope, error) {
	var req updateProfileReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.processUpdateProfileRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
