package features

import (
	"salary-predictor/internal/domain/encoding"
	"salary-predictor/internal/title"
)

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Build validates rec and encodes it. Invalid input yields *ValidationError.
func Build(rec Record) (Vector, error) {
	if ok, msg := Validate(rec); !ok {
		return Vector{}, &ValidationError{Message: msg}
	}

	years, err := parseYears(rec.Years)
	if err != nil {
		return Vector{}, err
	}
	day, month, year, err := ParseDate(rec.SalaryDate)
	if err != nil {
		return Vector{}, err
	}

	var v Vector
	v[IdxYears] = years
	v[IdxCompanyCountry] = float64(lookup(encoding.CompanyCountry, rec.CompanyCountry))
	v[IdxWorkType] = float64(lookup(encoding.WorkType, rec.WorkType))
	v[IdxWorkHour] = float64(lookup(encoding.WorkHour, rec.WorkHour))
	v[IdxCity] = float64(lookup(encoding.City, rec.City))
	v[IdxCurrency] = float64(lookup(encoding.Currency, rec.Currency))
	v[IdxJobCategory] = float64(title.Categorize(rec.Title))
	v[IdxDay] = float64(day)
	v[IdxMonth] = float64(month)
	v[IdxYear] = float64(year)
	return v, nil
}

func lookup(t encoding.CodeTable, key string) int {
	c, _ := t.Code(key)
	return c
}
