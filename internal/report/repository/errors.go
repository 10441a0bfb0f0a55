package repository

import "errors"

var (
	ErrObjectNotFound = errors.New("repository: object not found")
	ErrListFailed     = errors.New("repository: failed to list objects")
	ErrMintFailed     = errors.New("repository: failed to mint signed URL")
	ErrMutationFailed = errors.New("repository: failed to mutate object")
)
