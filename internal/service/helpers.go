package service

import (
	"image/color"
	"time"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func splitTotals(days []domain.DailyTotals) (dates []time.Time, confirmed, deaths, recovered []float64) {
	dates = make([]time.Time, len(days))
	confirmed = make([]float64, len(days))
	deaths = make([]float64, len(days))
	recovered = make([]float64, len(days))
	for i, d := range days {
		dates[i] = d.Date
		confirmed[i] = float64(d.Confirmed)
		deaths[i] = float64(d.Deaths)
		recovered[i] = float64(d.Recovered)
	}
	return dates, confirmed, deaths, recovered
}

func rateColor(kind analysis.RateKind) color.Color {
	switch kind {
	case analysis.Recovery:
		return chart.ColorRecovered
	case analysis.ActiveCases:
		return chart.ColorActive
	}
	return chart.ColorDeaths
}

func placeName(country string) string {
	if country == "" {
		return "the World"
	}
	return country
}
