package model

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatSalary renders a prediction with thousands separators and no decimals,
// decorated per currency.
func FormatSalary(v float64, currency string) string {
	n := printer.Sprintf("%.0f", v)
	switch currency {
	case "EGP":
		return n + " EGP"
	case "USD":
		return "$" + n + " USD"
	case "AED":
		return n + " AED"
	case "SAR":
		return n + " SAR"
	case "EUR":
		return "€" + n + " EUR"
	default:
		return n
	}
}
