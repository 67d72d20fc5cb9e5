package handler

import (
	"bytes"
	"embed"
	"html/template"

	"salary-predictor/internal/domain/encoding"
	"salary-predictor/internal/domain/features"
)

//go:embed templates/form.html
var templates embed.FS

var formTemplate = template.Must(template.ParseFS(templates, "templates/form.html"))

type selectField struct {
	Name     string
	Label    string
	Options  []string
	Selected string
}

type formView struct {
	AppName    string
	Values     features.Record
	Prediction string
	Error      string
	Selects    []selectField
}

var selectLabels = map[string]string{
	"currency":       "Currency",
	"workhour":       "Work hour",
	"worktype":       "Work type",
	"companyCountry": "Company country",
	"city":           "City",
}

// Select order on the page. Table names double as form field names.
var selectOrder = []string{"companyCountry", "worktype", "workhour", "city", "currency"}

func selected(rec features.Record, name string) string {
	switch name {
	case "currency":
		return rec.Currency
	case "workhour":
		return rec.WorkHour
	case "worktype":
		return rec.WorkType
	case "companyCountry":
		return rec.CompanyCountry
	case "city":
		return rec.City
	}
	return ""
}

func newFormView(appName string, rec features.Record) formView {
	tables := make(map[string]encoding.CodeTable, len(encoding.All()))
	for _, t := range encoding.All() {
		tables[t.Name()] = t
	}

	v := formView{AppName: appName, Values: rec, Selects: make([]selectField, 0, len(selectOrder))}
	for _, name := range selectOrder {
		v.Selects = append(v.Selects, selectField{
			Name:     name,
			Label:    selectLabels[name],
			Options:  tables[name].Keys(),
			Selected: selected(rec, name),
		})
	}
	return v
}

func renderForm(v formView) ([]byte, error) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
