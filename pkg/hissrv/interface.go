package hissrv

import "context"

// IHIS defines the interface for the Hospital Information System gateway client.
// Implementations are safe for concurrent use.
type IHIS interface {
	GetPatient(ctx context.Context, patientID string) (*Patient, error)
	PatientExists(ctx context.Context, patientID string) (bool, error)
	GetFamilyMembers(ctx context.Context, patientID string) ([]FamilyMember, error)
}

// New creates a new HIS gateway client. Returns the interface.
func New(cfg HISConfig) IHIS {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = defaultHTTPClient()
	}
	return &hisImpl{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}
