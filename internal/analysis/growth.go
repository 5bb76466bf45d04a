package analysis

import "github.com/kaustubh03-ks/covid-19-analysis/internal/domain"

// GrowthRates is the day-over-day percentage change of confirmed cases.
func GrowthRates(days []domain.DailyTotals) []domain.GrowthPoint {
	out := make([]domain.GrowthPoint, len(days))
	for i, d := range days {
		out[i] = domain.GrowthPoint{Date: d.Date, Confirmed: d.Confirmed}
		if i == 0 {
			continue
		}
		prev := days[i-1].Confirmed
		if prev <= 0 {
			continue
		}
		out[i].GrowthRate = domain.Ratio(d.Confirmed-prev, prev)
		out[i].Valid = true
	}
	return out
}
