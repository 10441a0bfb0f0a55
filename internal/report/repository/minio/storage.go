package minio

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
	pkgMinio "portal-srv/pkg/minio"
)

func (r *implRepository) toObject(patientID string, f *pkgMinio.FileInfo) repository.Object {
	department := f.Metadata[metaKeyDepartment]
	if department == "" {
		department = report.DepartmentOthers
	}
	return repository.Object{
		Name:          strings.TrimPrefix(f.ObjectName, patientID+"/"),
		PatientID:     patientID,
		SizeKB:        f.Size / 1024,
		UploadDate:    f.LastModified,
		Department:    department,
		SubDepartment: f.Metadata[metaKeySubDepartment],
	}
}

func (r *implRepository) ListObjects(ctx context.Context, patientID string) ([]repository.Object, error) {
	resp, err := r.storage.ListFiles(ctx, &pkgMinio.ListRequest{
		BucketName:   r.bucket,
		Prefix:       patientID + "/",
		Recursive:    true,
		WithMetadata: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "report.repository.minio.ListObjects: ListFiles failed: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrListFailed, err)
	}

	objects := make([]repository.Object, 0, len(resp.Files))
	for _, f := range resp.Files {
		objects = append(objects, r.toObject(patientID, f))
	}
	return objects, nil
}

func (r *implRepository) StatObject(ctx context.Context, path string) (repository.Object, error) {
	info, err := r.storage.GetFileInfo(ctx, r.bucket, path)
	if err != nil {
		if pkgMinio.IsNotFound(err) {
			return repository.Object{}, repository.ErrObjectNotFound
		}
		r.l.Errorf(ctx, "report.repository.minio.StatObject: GetFileInfo failed: %v", err)
		return repository.Object{}, fmt.Errorf("%w: %v", repository.ErrListFailed, err)
	}

	patientID, _, _ := strings.Cut(path, "/")
	return r.toObject(patientID, info), nil
}

func (r *implRepository) MintURL(ctx context.Context, path string, ttl time.Duration) (string, time.Time, error) {
	resp, err := r.storage.GetPresignedDownloadURL(ctx, &pkgMinio.PresignedURLRequest{
		BucketName: r.bucket,
		ObjectName: path,
		Expiry:     ttl,
	})
	if err != nil {
		if pkgMinio.IsNotFound(err) {
			return "", time.Time{}, repository.ErrObjectNotFound
		}
		r.l.Errorf(ctx, "report.repository.minio.MintURL: presign failed for %s: %v", path, err)
		return "", time.Time{}, fmt.Errorf("%w: %v", repository.ErrMintFailed, err)
	}
	return resp.URL, resp.ExpiresAt, nil
}

func (r *implRepository) RetagDepartment(ctx context.Context, path, department string) error {
	metadata, err := r.storage.GetMetadata(ctx, r.bucket, path)
	if err != nil {
		if pkgMinio.IsNotFound(err) {
			return repository.ErrObjectNotFound
		}
		r.l.Errorf(ctx, "report.repository.minio.RetagDepartment: GetMetadata failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMutationFailed, err)
	}

	// keep the original department recoverable after an archive
	if prev := metadata[metaKeyDepartment]; prev != "" && prev != department {
		metadata["Previous-Department"] = prev
	}
	metadata[metaKeyDepartment] = department

	if err := r.storage.UpdateMetadata(ctx, r.bucket, path, metadata); err != nil {
		if pkgMinio.IsNotFound(err) {
			return repository.ErrObjectNotFound
		}
		r.l.Errorf(ctx, "report.repository.minio.RetagDepartment: UpdateMetadata failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMutationFailed, err)
	}
	return nil
}

func (r *implRepository) RemoveObject(ctx context.Context, path string) error {
	exists, err := r.storage.FileExists(ctx, r.bucket, path)
	if err != nil {
		r.l.Errorf(ctx, "report.repository.minio.RemoveObject: FileExists failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMutationFailed, err)
	}
	if !exists {
		return repository.ErrObjectNotFound
	}

	if err := r.storage.DeleteFile(ctx, r.bucket, path); err != nil {
		r.l.Errorf(ctx, "report.repository.minio.RemoveObject: DeleteFile failed: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrMutationFailed, err)
	}
	return nil
}

func (r *implRepository) PutObject(ctx context.Context, opts repository.PutObjectOptions) (string, error) {
	metadata := map[string]string{
		metaKeyDepartment: opts.Department,
	}
	if opts.SubDepartment != "" {
		metadata[metaKeySubDepartment] = opts.SubDepartment
	}

	info, err := r.storage.UploadFile(ctx, &pkgMinio.UploadRequest{
		BucketName:  r.bucket,
		ObjectName:  opts.Path,
		Reader:      opts.Reader,
		Size:        opts.Size,
		ContentType: opts.ContentType,
		Metadata:    metadata,
	})
	if err != nil {
		r.l.Errorf(ctx, "report.repository.minio.PutObject: UploadFile failed: %v", err)
		return "", fmt.Errorf("%w: %v", repository.ErrMutationFailed, err)
	}
	return info.ObjectName, nil
}
