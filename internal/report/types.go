package report

import (
	"io"
	"time"
)

// Top-level report departments. ARCHIVED and DELETED are lifecycle
// sentinels, not real departments: records carrying them are excluded
// from the default view but remain enumerable.
const (
	DepartmentLab      = "LAB"
	DepartmentECG      = "ECG"
	DepartmentScan     = "SCAN"
	DepartmentXRay     = "X-RAY"
	DepartmentPharmacy = "PHARMACY"
	DepartmentOthers   = "OTHERS"

	DepartmentArchived = "ARCHIVED"
	DepartmentDeleted  = "DELETED"
)

// CategoryAll selects every non-sentinel record.
const CategoryAll = "all"

var departments = map[string]bool{
	DepartmentLab:      true,
	DepartmentECG:      true,
	DepartmentScan:     true,
	DepartmentXRay:     true,
	DepartmentPharmacy: true,
	DepartmentOthers:   true,
}

var sentinelDepartments = map[string]bool{
	DepartmentArchived: true,
	DepartmentDeleted:  true,
}

// subBuckets maps each sub-bucketed department to its second-level categories.
var subBuckets = map[string][]string{
	DepartmentLab:      {"Hematology", "Biochemistry", "Microbiology", "Bloodbank"},
	DepartmentPharmacy: {"Prescription", "OTC"},
}

// IsDepartment reports whether d is a known non-sentinel department.
func IsDepartment(d string) bool {
	return departments[d]
}

// IsSentinel reports whether d is an archived/deleted lifecycle sentinel.
func IsSentinel(d string) bool {
	return sentinelDepartments[d]
}

// HasSubBuckets reports whether the category defines second-level buckets.
func HasSubBuckets(category string) bool {
	_, ok := subBuckets[category]
	return ok
}

// IsSubBucket reports whether sub is a known sub-bucket of category.
func IsSubBucket(category, sub string) bool {
	for _, s := range subBuckets[category] {
		if s == sub {
			return true
		}
	}
	return false
}

// Record is the normalized report metadata handed to callers. URL and
// ExpiryTime are patched in place on renewal.
type Record struct {
	Name          string
	URL           string
	ExpiryTime    time.Time
	PatientID     string
	SizeKB        int64
	UploadDate    time.Time
	Department    string
	SubDepartment string
}

// Path rebuilds the storage object path for the record.
func (r Record) Path() string {
	return r.PatientID + "/" + r.Name
}

type ListInput struct {
	PatientID   string
	Category    string
	SubCategory string
	Sort        string // "asc" or "desc" over upload date; empty keeps backend order
}

type ListOutput struct {
	Reports []Record
}

type RegenerateInput struct {
	FilePath string
}

type RegenerateOutput struct {
	SignedURL string
}

// ActionInput targets a single report for view/download/share.
type ActionInput struct {
	PatientID string
	Name      string
}

type ViewOutput struct {
	URL       string
	ExpiresAt time.Time
}

type DownloadOutput struct {
	URL       string
	FileName  string
	ExpiresAt time.Time
}

type ShareOutput struct {
	URL       string
	ExpiresAt time.Time
}

type ArchiveInput struct {
	PatientID string
	Name      string
}

type DeleteInput struct {
	PatientID string
	Name      string
	Reason    string
}

type UploadInput struct {
	PatientID     string
	FileName      string
	Department    string
	SubDepartment string
	Reader        io.Reader
	Size          int64
	ContentType   string
}

type UploadOutput struct {
	Path string
}
