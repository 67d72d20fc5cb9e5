package features

// Record is one raw form submission.
type Record struct {
	Title          string `json:"title" form:"title"`
	Years          string `json:"years" form:"years"`
	SalaryDate     string `json:"salaryDate" form:"salaryDate"`
	CompanyCountry string `json:"companyCountry" form:"companyCountry"`
	WorkType       string `json:"worktype" form:"worktype"`
	WorkHour       string `json:"workhour" form:"workhour"`
	City           string `json:"city" form:"city"`
	Currency       string `json:"currency" form:"currency"`
}

type field struct {
	name  string
	value func(Record) string
}

var requiredFields = []field{
	{"title", func(r Record) string { return r.Title }},
	{"years", func(r Record) string { return r.Years }},
	{"salaryDate", func(r Record) string { return r.SalaryDate }},
	{"companyCountry", func(r Record) string { return r.CompanyCountry }},
	{"worktype", func(r Record) string { return r.WorkType }},
	{"workhour", func(r Record) string { return r.WorkHour }},
	{"city", func(r Record) string { return r.City }},
	{"currency", func(r Record) string { return r.Currency }},
}

// RequiredFields lists the form field names in the order they are checked.
func RequiredFields() []string {
	out := make([]string, 0, len(requiredFields))
	for _, f := range requiredFields {
		out = append(out, f.name)
	}
	return out
}
