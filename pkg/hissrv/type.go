package hissrv

import pkghttp "portal-srv/pkg/http"

// HISConfig holds configuration for the HIS gateway client.
type HISConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient pkghttp.IClient
}

// Patient represents a patient record in the HIS.
type Patient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// FamilyMember represents a family member linked to a patient in the HIS.
type FamilyMember struct {
	PatientID string `json:"patient_id"`
	Name      string `json:"name"`
	Relation  string `json:"relation"`
}

// hisImpl implements IHIS.
type hisImpl struct {
	baseURL    string
	apiKey     string
	httpClient pkghttp.IClient
}
