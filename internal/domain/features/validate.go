package features

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"salary-predictor/internal/domain/encoding"
)

const (
	msgMissingField   = "Missing required field: %s"
	msgYearsNegative  = "Years of experience cannot be negative"
	msgYearsNotNumber = "Years of experience must be a valid number"
	msgInvalidValue   = "Invalid %s: %s"
)

type tableCheck struct {
	label string
	table encoding.CodeTable
	value func(Record) string
}

var tableChecks = []tableCheck{
	{"currency", encoding.Currency, func(r Record) string { return r.Currency }},
	{"work hour", encoding.WorkHour, func(r Record) string { return r.WorkHour }},
	{"work type", encoding.WorkType, func(r Record) string { return r.WorkType }},
	{"company country", encoding.CompanyCountry, func(r Record) string { return r.CompanyCountry }},
	{"city", encoding.City, func(r Record) string { return r.City }},
}

// Validate reports whether rec can be encoded. On failure the message names the
// first problem found.
func Validate(rec Record) (bool, string) {
	for _, f := range requiredFields {
		if f.value(rec) == "" {
			return false, fmt.Sprintf(msgMissingField, f.name)
		}
	}

	years, err := parseYears(rec.Years)
	if err != nil {
		return false, msgYearsNotNumber
	}
	if years < 0 {
		return false, msgYearsNegative
	}

	for _, c := range tableChecks {
		v := c.value(rec)
		if !c.table.Contains(v) {
			return false, fmt.Sprintf(msgInvalidValue, c.label, v)
		}
	}

	if _, _, _, err := ParseDate(rec.SalaryDate); err != nil {
		return false, err.Error()
	}

	return true, ""
}

// Plain decimal literals: optional sign, digits with single underscores
// between them, optional fraction and exponent. Hex floats and base prefixes
// are rejected.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d(_?\d)*(\.(\d(_?\d)*)?)?|\.\d(_?\d)*)([eE][+-]?\d(_?\d)*)?$`)

func parseYears(s string) (float64, error) {
	s = asciiDigits(strings.TrimSpace(s))
	if !decimalLiteral.MatchString(s) {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, "_", ""), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

// asciiDigits rewrites decimal digits from any script ("٣", "１２") to ASCII.
// Unicode encodes every such digit in a contiguous 0..9 run.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf || !unicode.IsDigit(r) {
			return r
		}
		zero := r
		for unicode.IsDigit(zero - 1) {
			zero--
		}
		return '0' + (r-zero)%10
	}, s)
}
