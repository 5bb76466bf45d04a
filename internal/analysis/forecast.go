package analysis

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

const day = 24 * time.Hour

// LinearForecast fits confirmed = intercept + slope*t by least squares over the last
// window days, t counted in days from the start of the window, and extrapolates horizon
// days past the last observation. Predictions never go below zero.
func LinearForecast(days []domain.DailyTotals, window, horizon int) (domain.Forecast, error) {
	if window <= 0 || window > len(days) {
		window = len(days)
	}
	if window < 2 {
		return domain.Forecast{}, fmt.Errorf("%w: need at least 2 days, got %d", domain.ErrEmptySelection, window)
	}
	if horizon < 0 {
		horizon = 0
	}

	history := days[len(days)-window:]
	start := history[0].Date
	xs := make([]float64, window)
	ys := make([]float64, window)
	for i, d := range history {
		xs[i] = d.Date.Sub(start).Hours() / 24
		ys[i] = float64(d.Confirmed)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		// constant series: the fit is exact
		r2 = 1
	}

	last := history[window-1].Date
	points := make([]domain.ForecastPoint, horizon)
	for i := range points {
		date := last.Add(time.Duration(i+1) * day)
		x := date.Sub(start).Hours() / 24
		points[i] = domain.ForecastPoint{Date: date, Confirmed: math.Max(0, intercept+slope*x)}
	}

	return domain.Forecast{
		Window:    window,
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r2,
		History:   history,
		Points:    points,
	}, nil
}
