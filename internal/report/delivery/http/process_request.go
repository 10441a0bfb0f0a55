package http

import (
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"portal-srv/internal/model"
	"portal-srv/internal/report"
	"portal-srv/pkg/scope"
)

func (h *handler) processListReportsRequest(c *gin.Context) (listReportsReq, model.Scope, error) {
	var req listReportsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processListReportsRequest: ShouldBindQuery failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processRegenerateURLRequest(c *gin.Context) (regenerateURLReq, model.Scope, error) {
	var req regenerateURLReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processRegenerateURLRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processActionRequest(c *gin.Context) (actionReq, model.Scope, error) {
	var req actionReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processActionRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processDeleteReportRequest(c *gin.Context) (deleteReportReq, model.Scope, error) {
	var req deleteReportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processDeleteReportRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processUploadReportRequest(c *gin.Context) (report.UploadInput, multipart.File, model.Scope, error) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processUploadReportRequest: FormFile failed: %v", err)
		return report.UploadInput{}, nil, sc, report.ErrFileRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "report.delivery.http.processUploadReportRequest: Open failed: %v", err)
		return report.UploadInput{}, nil, sc, report.ErrFileRequired
	}

	fileName := c.PostForm("file_name")
	if fileName == "" {
		fileName = fileHeader.Filename
	}

	input := report.UploadInput{
		PatientID:     c.PostForm("patient_id"),
		FileName:      fileName,
		Department:    c.PostForm("department"),
		SubDepartment: c.PostForm("sub_department"),
		Reader:        file,
		Size:          fileHeader.Size,
		ContentType:   fileHeader.Header.Get("Content-Type"),
	}
	return input, file, sc, nil
}
