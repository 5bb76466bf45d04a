package analysis

import (
	"fmt"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type RateKind string

const (
	CaseFatality RateKind = "cfr"
	Recovery     RateKind = "recovery"
	ActiveCases  RateKind = "active"
)

func (k RateKind) Title() string {
	switch k {
	case CaseFatality:
		return "Case Fatality Rate"
	case Recovery:
		return "Recovery Rate"
	case ActiveCases:
		return "Active Case Ratio"
	}
	return string(k)
}

func (k RateKind) Of(r domain.Rates) float64 {
	switch k {
	case Recovery:
		return r.RecoveryRate
	case ActiveCases:
		return r.ActiveRatio
	}
	return r.CFR
}

func ParseRateKind(s string) (RateKind, error) {
	switch k := RateKind(s); k {
	case CaseFatality, Recovery, ActiveCases:
		return k, nil
	}
	return "", fmt.Errorf("%w: rate %q", domain.ErrInvalidChartKind, s)
}

// RateSeries derives one ratio per date from the daily sums.
func RateSeries(days []domain.DailyTotals, kind RateKind) []domain.RatePoint {
	out := make([]domain.RatePoint, len(days))
	for i, d := range days {
		out[i] = domain.RatePoint{Date: d.Date, Value: kind.Of(d.Totals.Rates())}
	}
	return out
}

// LatestRates returns the rates of the last day, or zero rates when days is empty.
func LatestRates(days []domain.DailyTotals) domain.Rates {
	if len(days) == 0 {
		return domain.Rates{}
	}
	return days[len(days)-1].Totals.Rates()
}
