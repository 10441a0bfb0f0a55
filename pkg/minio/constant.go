package minio

import "time"

const (
	// HTTP transport for MinIO client
	maxIdleConns        = 100
	maxIdleConnsPerHost = 100
	idleConnTimeout     = 90 * time.Second
	disableCompression  = true
)

const (
	// DefaultListMaxKeys is the default max keys when listing objects.
	DefaultListMaxKeys = 1000
	// MaxListMaxKeys is the maximum allowed max keys for list.
	MaxListMaxKeys = 1000
	// MaxFileSizeBytes is the maximum upload file size (100MB).
	MaxFileSizeBytes = 100 * 1024 * 1024
	// MaxPresignedExpiry is the maximum presigned URL expiry (7 days).
	MaxPresignedExpiry = 7 * 24 * time.Hour
	// DefaultEndpointPort is appended to endpoint if no port.
	DefaultEndpointPort = ":9000"
)

// Presigned URL methods.
const (
	MethodGET = "GET"
)
