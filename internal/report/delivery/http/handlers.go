package http

import (
	"github.com/gin-gonic/gin"

	"portal-srv/internal/report"
	"portal-srv/pkg/response"
)

// @Summary List patient reports
// @Description List every report under a patient namespace with freshly minted signed URLs, optionally filtered by category/sub-category and sorted by upload date
// @Tags Report
// @Produce json
// @Param patient_id query string true "Patient ID"
// @Param category query string false "Department category or 'all'"
// @Param sub_category query string false "Sub-department bucket"
// @Param sort query string false "asc or desc over upload date"
// @Success 200 {object} listReportsResp
// @Failure 400 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router /api/v1/reports [get]
func (h *handler) ListReports(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListReportsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: processListReportsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ListReports(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ListReports: usecase ListReports failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListReportsResp(o))
}

// @Summary Regenerate a signed URL
// @Description Exchange a stale signed URL for a fresh one for the given storage path
// @Tags Report
// @Accept json
// @Produce json
// @Param body body regenerateURLReq true "Storage path {patient_id}/{name}"
// @Success 200 {object} regenerateURLResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/reports/regenerate-signed-url [post]
func (h *handler) RegenerateURL(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRegenerateURLRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RegenerateURL: processRegenerateURLRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.RegenerateURL(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.RegenerateURL: usecase RegenerateURL failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, regenerateURLResp{SignedURL: o.SignedURL})
}

// @Summary View a report
// @Description Return a fresh inline signed URL for the report, renewing it first if expired
// @Tags Report
// @Accept json
// @Produce json
// @Param body body actionReq true "Report target"
// @Success 200 {object} viewResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports/view [post]
func (h *handler) ViewReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processActionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ViewReport: processActionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ViewReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ViewReport: usecase ViewReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newViewResp(o))
}

// @Summary Download a report
// @Description Return a fresh signed URL and file name for a local save, renewing the URL first if expired
// @Tags Report
// @Accept json
// @Produce json
// @Param body body actionReq true "Report target"
// @Success 200 {object} downloadResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports/download [post]
func (h *handler) DownloadReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processActionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: processActionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.DownloadReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DownloadReport: usecase DownloadReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newDownloadResp(o))
}

// @Summary Share a report
// @Description Return a fresh shareable signed URL with its expiry, renewing the URL first if expired
// @Tags Report
// @Accept json
// @Produce json
// @Param body body actionReq true "Report target"
// @Success 200 {object} shareResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports/share [post]
func (h *handler) ShareReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processActionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ShareReport: processActionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ShareReport(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ShareReport: usecase ShareReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newShareResp(o))
}

// @Summary Archive a report
// @Description Retag the report as archived so it leaves the default view while staying enumerable; doctors only
// @Tags Report
// @Accept json
// @Produce json
// @Param body body actionReq true "Report target"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports/archive [post]
func (h *handler) ArchiveReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processActionRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ArchiveReport: processActionRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.ArchiveReport(ctx, sc, report.ArchiveInput(req.toInput())); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.ArchiveReport: usecase ArchiveReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Delete a report
// @Description Permanently remove a report with an audited reason; technicians only
// @Tags Report
// @Accept json
// @Produce json
// @Param body body deleteReportReq true "Report target and reason"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/reports/delete [post]
func (h *handler) DeleteReport(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processDeleteReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeleteReport: processDeleteReportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.DeleteReport(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.DeleteReport: usecase DeleteReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Upload a report
// @Description Store a report file under the patient namespace with department metadata; staff only
// @Tags Report
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Report file"
// @Param patient_id formData string true "Patient ID"
// @Param file_name formData string false "Override file name"
// @Param department formData string true "Department"
// @Param sub_department formData string false "Sub-department"
// @Success 200 {object} uploadResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/v1/reports/upload [post]
func (h *handler) UploadReport(c *gin.Context) {
	ctx := c.Request.Context()

	input, file, sc, err := h.processUploadReportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UploadReport: processUploadReportRequest failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}
	defer file.Close()

	o, err := h.uc.UploadReport(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.UploadReport: usecase UploadReport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, uploadResp{Path: o.Path})
}
