package cli

import (
	"github.com/spf13/cobra"

	"salary-predictor/internal/domain/features"
)

func bindRecordFlags(cmd *cobra.Command, rec *features.Record) {
	f := cmd.Flags()
	f.StringVar(&rec.Title, "title", "", "job title")
	f.StringVar(&rec.Years, "years", "", "years of experience")
	f.StringVar(&rec.SalaryDate, "salary-date", "", "salary date (YYYY-MM-DD)")
	f.StringVar(&rec.CompanyCountry, "company-country", "", "company country classification")
	f.StringVar(&rec.WorkType, "worktype", "", "Remote, On Site or Hybrid")
	f.StringVar(&rec.WorkHour, "workhour", "", "Full Time or Part Time")
	f.StringVar(&rec.City, "city", "", "city")
	f.StringVar(&rec.Currency, "currency", "", "EGP, USD, AED, SAR or EUR")
}
