package features

import (
	"errors"
	"testing"

	"salary-predictor/internal/domain/encoding"
)

func TestBuild_Vector(t *testing.T) {
	rec := Record{
		Title:          "Front-End Developer!!",
		Years:          "4.5",
		SalaryDate:     "2024-02-29",
		CompanyCountry: "Not Egyption and site out of egypt",
		WorkType:       "Hybrid",
		WorkHour:       "Part Time",
		City:           "Kuwait ",
		Currency:       "EUR",
	}
	v, err := Build(rec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := Vector{4.5, 3, 2, 0, 43, 4, 1, 29, 2, 2024}
	if v != want {
		t.Fatalf("expected %v, got %v", want, v)
	}

	m := v.Matrix()
	if len(m) != 1 || len(m[0]) != VectorLen {
		t.Fatalf("expected 1x%d matrix, got %dx%d", VectorLen, len(m), len(m[0]))
	}
	m[0][0] = -1
	if v[IdxYears] != 4.5 {
		t.Fatalf("Matrix() must not alias the vector")
	}
}

func TestBuild_ValidationError(t *testing.T) {
	rec := validRecord()
	rec.Years = "abc"
	_, err := Build(rec)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
	if ve.Message != "Years of experience must be a valid number" {
		t.Fatalf("unexpected message %q", ve.Message)
	}
}

func TestBuild_EveryTableKeyRoundTrips(t *testing.T) {
	positions := map[string]struct {
		idx int
		set func(*Record, string)
	}{
		"currency":       {IdxCurrency, func(r *Record, v string) { r.Currency = v }},
		"workhour":       {IdxWorkHour, func(r *Record, v string) { r.WorkHour = v }},
		"worktype":       {IdxWorkType, func(r *Record, v string) { r.WorkType = v }},
		"companyCountry": {IdxCompanyCountry, func(r *Record, v string) { r.CompanyCountry = v }},
		"city":           {IdxCity, func(r *Record, v string) { r.City = v }},
	}

	for _, tbl := range encoding.All() {
		pos, ok := positions[tbl.Name()]
		if !ok {
			t.Fatalf("no vector position for table %s", tbl.Name())
		}
		for _, e := range tbl.Entries() {
			rec := validRecord()
			pos.set(&rec, e.Key)

			v, err := Build(rec)
			if err != nil {
				t.Fatalf("%s %q: unexpected err: %v", tbl.Name(), e.Key, err)
			}
			if v[pos.idx] != float64(e.Code) {
				t.Fatalf("%s %q: expected %d at position %d, got %v", tbl.Name(), e.Key, e.Code, pos.idx, v[pos.idx])
			}
		}
	}
}

func TestFeatureNames(t *testing.T) {
	names := FeatureNames()
	if len(names) != VectorLen {
		t.Fatalf("expected %d names, got %d", VectorLen, len(names))
	}
	if names[IdxYears] != "years" || names[IdxJobCategory] != "job_category" || names[IdxYear] != "year" {
		t.Fatalf("unexpected names %v", names)
	}
}
