package minio

import "fmt"

// StorageError codes.
const (
	ErrCodeConnection     = "CONNECTION"
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION"
)

// StorageError is the error type returned by all MinIO operations.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	if e.Operation != "" {
		return fmt.Sprintf("minio %s: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("minio: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether the error is a missing bucket or object.
func IsNotFound(err error) bool {
	storageErr, ok := err.(*StorageError)
	return ok && (storageErr.Code == ErrCodeObjectNotFound || storageErr.Code == ErrCodeBucketNotFound)
}

// NewConnectionError wraps a connection failure.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "connection failed", Cause: cause}
}

// NewInvalidInputError creates a validation error.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// NewBucketNotFoundError creates a bucket-not-found error.
func NewBucketNotFoundError(bucket string) *StorageError {
	msg := "bucket not found"
	if bucket != "" {
		msg = fmt.Sprintf("bucket not found: %s", bucket)
	}
	return &StorageError{Code: ErrCodeBucketNotFound, Message: msg}
}

// NewObjectNotFoundError creates an object-not-found error.
func NewObjectNotFoundError(object string) *StorageError {
	msg := "object not found"
	if object != "" {
		msg = fmt.Sprintf("object not found: %s", object)
	}
	return &StorageError{Code: ErrCodeObjectNotFound, Message: msg}
}
