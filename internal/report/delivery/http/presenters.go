package http

import (
	"time"

	"portal-srv/internal/report"
)

type listReportsReq struct {
	PatientID   string `form:"patient_id"`
	Category    string `form:"category"`
	SubCategory string `form:"sub_category"`
	Sort        string `form:"sort"`
}

func (r listReportsReq) toInput() report.ListInput {
	category := r.Category
	if category == "" {
		category = report.CategoryAll
	}
	return report.ListInput{
		PatientID:   r.PatientID,
		Category:    category,
		SubCategory: r.SubCategory,
		Sort:        r.Sort,
	}
}

type regenerateURLReq struct {
	FilePath string `json:"file_path" binding:"required"`
}

func (r regenerateURLReq) toInput() report.RegenerateInput {
	return report.RegenerateInput{FilePath: r.FilePath}
}

type actionReq struct {
	PatientID string `json:"patient_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

func (r actionReq) toInput() report.ActionInput {
	return report.ActionInput{PatientID: r.PatientID, Name: r.Name}
}

type deleteReportReq struct {
	PatientID string `json:"patient_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Reason    string `json:"reason"`
}

func (r deleteReportReq) toInput() report.DeleteInput {
	return report.DeleteInput{PatientID: r.PatientID, Name: r.Name, Reason: r.Reason}
}

type reportResp struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	ExpiryTime    string `json:"expiry_time"`
	PatientID     string `json:"patient_id"`
	SizeKB        int64  `json:"size_kb"`
	UploadDate    string `json:"upload_date"`
	Department    string `json:"department"`
	SubDepartment string `json:"sub_department,omitempty"`
}

type listReportsResp struct {
	Reports []reportResp `json:"reports"`
	Total   int          `json:"total"`
}

type regenerateURLResp struct {
	SignedURL string `json:"signed_url"`
}

type viewResp struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

type downloadResp struct {
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	ExpiresAt string `json:"expires_at"`
}

type shareResp struct {
	URL       string `json:"url"`
	ExpiresAt string `json:"expires_at"`
}

type uploadResp struct {
	Path string `json:"path"`
}

func (h *handler) newReportResp(r report.Record) reportResp {
	return reportResp{
		Name:          r.Name,
		URL:           r.URL,
		ExpiryTime:    r.ExpiryTime.UTC().Format(time.RFC3339),
		PatientID:     r.PatientID,
		SizeKB:        r.SizeKB,
		UploadDate:    r.UploadDate.UTC().Format(time.RFC3339),
		Department:    r.Department,
		SubDepartment: r.SubDepartment,
	}
}

func (h *handler) newListReportsResp(o report.ListOutput) listReportsResp {
	resp := listReportsResp{
		Reports: make([]reportResp, 0, len(o.Reports)),
		Total:   len(o.Reports),
	}
	for _, r := range o.Reports {
		resp.Reports = append(resp.Reports, h.newReportResp(r))
	}
	return resp
}

func (h *handler) newViewResp(o report.ViewOutput) viewResp {
	return viewResp{
		URL:       o.URL,
		ExpiresAt: o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newDownloadResp(o report.DownloadOutput) downloadResp {
	return downloadResp{
		URL:       o.URL,
		FileName:  o.FileName,
		ExpiresAt: o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

func (h *handler) newShareResp(o report.ShareOutput) shareResp {
	return shareResp{
		URL:       o.URL,
		ExpiresAt: o.ExpiresAt.UTC().Format(time.RFC3339),
	}
}
