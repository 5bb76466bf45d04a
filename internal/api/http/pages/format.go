package pages

import (
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

var printer = message.NewPrinter(language.English)

// formatCount renders 1234567 as 1,234,567.
func formatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

func formatPercent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"count":   formatCount,
		"percent": formatPercent,
		"date":    formatDate,
	}
}
