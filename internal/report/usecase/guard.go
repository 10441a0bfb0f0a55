package usecase

import (
	"context"
	"errors"
	"time"

	"portal-srv/internal/report"
	"portal-srv/internal/report/repository"
)

// ensureFresh renews the record's signed URL if and only if it has
// expired. A fresh URL is never proactively renewed. On renewal the new
// expiry is now plus the single configured renewal window; on failure
// the record is left untouched so a later attempt can retry.
func (uc *implUseCase) ensureFresh(ctx context.Context, r *report.Record, now time.Time) error {
	if !now.After(r.ExpiryTime) {
		return nil
	}

	url, _, err := uc.repo.MintURL(ctx, r.Path(), uc.config.RenewalTTL)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.ensureFresh: renewal failed for %s: %v", r.Path(), err)
		return report.ErrRenewalFailed
	}

	r.URL = url
	r.ExpiryTime = now.Add(uc.config.RenewalTTL)
	return nil
}
