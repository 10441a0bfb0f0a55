package report

import (
	"testing"
	"time"
)

func rec(name, department, subDepartment string) Record {
	return Record{
		Name:          name,
		PatientID:     "P100",
		Department:    department,
		SubDepartment: subDepartment,
	}
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

func assertNames(t *testing.T, got []Record, want ...string) {
	t.Helper()
	gotNames := names(got)
	if len(gotNames) != len(want) {
		t.Fatalf("got %v, want %v", gotNames, want)
	}
	for i := range want {
		if gotNames[i] != want[i] {
			t.Fatalf("got %v, want %v", gotNames, want)
		}
	}
}

func TestClassify(t *testing.T) {
	list := []Record{
		rec("cbc.pdf", DepartmentLab, "Hematology"),
		rec("ecg.pdf", DepartmentECG, ""),
		rec("old-scan.pdf", DepartmentArchived, ""),
		rec("glucose.pdf", DepartmentLab, "Biochemistry"),
		rec("removed.pdf", DepartmentDeleted, ""),
		rec("rx.pdf", DepartmentPharmacy, "Prescription"),
	}

	t.Run("all excludes sentinels and preserves order", func(t *testing.T) {
		got := Classify(list, CategoryAll, "")
		assertNames(t, got, "cbc.pdf", "ecg.pdf", "glucose.pdf", "rx.pdf")
	})

	t.Run("category equality without sub-buckets", func(t *testing.T) {
		got := Classify(list, DepartmentECG, "")
		assertNames(t, got, "ecg.pdf")
	})

	t.Run("sub-bucket match", func(t *testing.T) {
		got := Classify(list, DepartmentLab, "Hematology")
		assertNames(t, got, "cbc.pdf")
	})

	t.Run("sub-bucket precedence over department", func(t *testing.T) {
		mixed := append([]Record{}, list...)
		// a scan report tagged with a lab sub-bucket still matches the sub-bucket filter
		mixed = append(mixed, rec("misfiled.pdf", DepartmentScan, "Hematology"))
		got := Classify(mixed, DepartmentLab, "Hematology")
		assertNames(t, got, "cbc.pdf", "misfiled.pdf")
	})

	t.Run("sub-bucket with no matches is empty", func(t *testing.T) {
		got := Classify([]Record{rec("cbc.pdf", DepartmentLab, "Hematology")}, DepartmentLab, "Biochemistry")
		if len(got) != 0 {
			t.Fatalf("expected empty result, got %v", names(got))
		}
	})

	t.Run("sub-bucketed category without sub falls back to department", func(t *testing.T) {
		got := Classify(list, DepartmentLab, "")
		assertNames(t, got, "cbc.pdf", "glucose.pdf")
	})

	t.Run("sentinel category still enumerable", func(t *testing.T) {
		got := Classify(list, DepartmentArchived, "")
		assertNames(t, got, "old-scan.pdf")
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := names(list)
		Classify(list, CategoryAll, "")
		after := names(list)
		for i := range before {
			if before[i] != after[i] {
				t.Fatal("input order changed")
			}
		}
	})
}

func TestSortByUploadDate(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	a := Record{Name: "a.pdf", UploadDate: base.AddDate(0, 0, 2)}
	b := Record{Name: "b.pdf", UploadDate: base}
	c := Record{Name: "c.pdf", UploadDate: base.AddDate(0, 0, 1)}
	list := []Record{a, b, c}

	t.Run("ascending", func(t *testing.T) {
		got := SortByUploadDate(list, false)
		assertNames(t, got, "b.pdf", "c.pdf", "a.pdf")
	})

	t.Run("descending", func(t *testing.T) {
		got := SortByUploadDate(list, true)
		assertNames(t, got, "a.pdf", "c.pdf", "b.pdf")
	})

	t.Run("stable on equal dates", func(t *testing.T) {
		d := Record{Name: "d.pdf", UploadDate: base}
		got := SortByUploadDate([]Record{b, d}, false)
		assertNames(t, got, "b.pdf", "d.pdf")
	})

	t.Run("does not mutate input", func(t *testing.T) {
		SortByUploadDate(list, true)
		assertNames(t, list, "a.pdf", "b.pdf", "c.pdf")
	})
}
