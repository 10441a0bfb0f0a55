package repository

import "io"

type PutObjectOptions struct {
	Path          string
	Reader        io.Reader
	Size          int64
	ContentType   string
	Department    string
	SubDepartment string
}
