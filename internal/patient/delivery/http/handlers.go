package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/pkg/response"
)

// @Summary Check patient existence
// @Description Answer whether a patient is known, consulting the local directory first and the upstream HIS on a miss
// @Tags Patient
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} existsResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/patients/exists [get]
func (h *handler) Exists(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExistsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.Exists: processExistsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Exists(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.Exists: usecase Exists failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, existsResp{Exists: o.Exists, Source: o.Source})
}

// @Summary List family members
// @Description List a patient's family roster; patients may only query their own
// @Tags Patient
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} familyResp
// @Failure 403 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/patients/family [get]
func (h *handler) Family(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processFamilyRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.Family: processFamilyRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Family(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.Family: usecase Family failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newFamilyResp(o.Members))
}

// @Summary Get patient profile
// @Description Return a patient profile with PHI fields decrypted; patients may only read their own
// @Tags Patient
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Success 200 {object} profileResp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/patients/profile [get]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetProfileRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.GetProfile: processGetProfileRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.GetProfile: usecase GetProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileResp(o.Patient))
}

// @Summary Update patient profile
// @Description Update contact fields; phone and address are re-encrypted at rest
// @Tags Patient
// @Accept json
// @Produce json
// @Param body body updateProfileReq true "Profile fields to update"
// @Success 200 {object} profileResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/patients/profile [put]
func (h *handler) UpdateProfile(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpdateProfileRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.UpdateProfile: processUpdateProfileRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UpdateProfile(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "patient.delivery.http.UpdateProfile: usecase UpdateProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newProfileResp(o.Patient))
}
