package hissrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	pkghttp "portal-srv/pkg/http"
)

func defaultHTTPClient() pkghttp.IClient {
	return pkghttp.NewClient(pkghttp.ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	})
}

func (c *hisImpl) headers() map[string]string {
	if c.apiKey == "" {
		return nil
	}
	return map[string]string{"X-Api-Key": c.apiKey}
}

// GetPatient retrieves patient details by ID.
func (c *hisImpl) GetPatient(ctx context.Context, patientID string) (*Patient, error) {
	url := fmt.Sprintf("%s%s/%s", c.baseURL, PathPatients, patientID)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrPatientNotFound
	default:
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var patient Patient
	if err := json.Unmarshal(body, &patient); err != nil {
		return nil, fmt.Errorf("failed to unmarshal patient: %w", err)
	}

	return &patient, nil
}

// PatientExists checks whether the HIS has a record for the patient.
func (c *hisImpl) PatientExists(ctx context.Context, patientID string) (bool, error) {
	url := fmt.Sprintf("%s%s/%s/exists", c.baseURL, PathPatients, patientID)

	_, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if statusCode == http.StatusOK {
		return true, nil
	}
	if statusCode == http.StatusNotFound {
		return false, nil
	}

	return false, fmt.Errorf("unexpected status code: %d", statusCode)
}

// GetFamilyMembers retrieves family members linked to a patient.
func (c *hisImpl) GetFamilyMembers(ctx context.Context, patientID string) ([]FamilyMember, error) {
	url := fmt.Sprintf("%s%s/%s/family", c.baseURL, PathPatients, patientID)

	body, statusCode, err := c.httpClient.Get(ctx, url, c.headers())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	switch statusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrPatientNotFound
	default:
		return nil, fmt.Errorf("unexpected status code: %d", statusCode)
	}

	var members []FamilyMember
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal family members: %w", err)
	}

	return members, nil
}
