package report

import "sort"

// Classify derives the visible subset of records for a category tab.
// It is pure and order-preserving; it never reaches the backend.
//
// Rules:
//   - CategoryAll: every record whose department is not a lifecycle sentinel.
//   - sub-bucketed category with a subCategory: records whose subDepartment
//     matches, regardless of department. Sub-bucket filtering takes
//     precedence over department equality.
//   - any other category (sentinels included): department equality.
func Classify(records []Record, category, subCategory string) []Record {
	out := make([]Record, 0, len(records))

	if category == CategoryAll {
		for _, r := range records {
			if !IsSentinel(r.Department) {
				out = append(out, r)
			}
		}
		return out
	}

	if HasSubBuckets(category) && subCategory != "" {
		for _, r := range records {
			if r.SubDepartment == subCategory {
				out = append(out, r)
			}
		}
		return out
	}

	for _, r := range records {
		if r.Department == category {
			out = append(out, r)
		}
	}
	return out
}

// SortByUploadDate returns a copy of records ordered by upload date.
// Records with equal dates keep their relative order.
func SortByUploadDate(records []Record, desc bool) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return out[i].UploadDate.After(out[j].UploadDate)
		}
		return out[i].UploadDate.Before(out[j].UploadDate)
	})
	return out
}
