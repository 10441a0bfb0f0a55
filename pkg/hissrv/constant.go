package hissrv

import "time"

const (
	// DefaultTimeout is the default HTTP client timeout for the HIS gateway.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the default number of retries.
	DefaultRetries = 3
	// DefaultRetryWait is the default wait between retries.
	DefaultRetryWait = 1 * time.Second
)

// API path segments (full URLs built in hissrv.go).
const (
	PathPatients = "/api/v1/patients"
)
