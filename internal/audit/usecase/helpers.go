package usecase

import (
	"portal-srv/internal/audit"
	"portal-srv/pkg/paginator"
)

func paginatorFor(input audit.ListInput, total, count int64) paginator.Paginator {
	return paginator.Paginator{
		Total:       total,
		Count:       count,
		PerPage:     input.PaginateQuery.Limit,
		CurrentPage: input.PaginateQuery.Page,
	}
}
