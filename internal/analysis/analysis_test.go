package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

var start = time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

func series(confirmed ...int64) []domain.DailyTotals {
	out := make([]domain.DailyTotals, len(confirmed))
	for i, c := range confirmed {
		out[i] = domain.DailyTotals{
			Date:   start.AddDate(0, 0, i),
			Totals: domain.Totals{Confirmed: c, Deaths: c / 10, Recovered: c / 2, Active: c - c/10 - c/2},
		}
	}
	return out
}

func TestGrowthRates(t *testing.T) {
	t.Run("percentage change", func(t *testing.T) {
		got := GrowthRates(series(100, 150, 150, 75))
		require.Len(t, got, 4)
		assert.False(t, got[0].Valid)
		assert.Zero(t, got[0].GrowthRate)
		assert.True(t, got[1].Valid)
		assert.InDelta(t, 50, got[1].GrowthRate, 1e-9)
		assert.InDelta(t, 0, got[2].GrowthRate, 1e-9)
		assert.InDelta(t, -50, got[3].GrowthRate, 1e-9)
		assert.Equal(t, int64(75), got[3].Confirmed)
	})

	t.Run("previous zero is not a valid rate", func(t *testing.T) {
		got := GrowthRates(series(0, 0, 4))
		assert.False(t, got[1].Valid)
		assert.False(t, got[2].Valid)
		assert.Zero(t, got[2].GrowthRate)
	})

	t.Run("constant series grows by zero", func(t *testing.T) {
		for _, p := range GrowthRates(series(9, 9, 9, 9))[1:] {
			assert.True(t, p.Valid)
			assert.Zero(t, p.GrowthRate)
		}
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, GrowthRates(nil))
	})
}

func TestRateSeries(t *testing.T) {
	days := series(0, 100, 200)
	for _, kind := range []RateKind{CaseFatality, Recovery, ActiveCases} {
		t.Run(string(kind), func(t *testing.T) {
			got := RateSeries(days, kind)
			require.Len(t, got, 3)
			assert.Zero(t, got[0].Value)
			for i := 1; i < len(got); i++ {
				assert.Equal(t, days[i].Date, got[i].Date)
				assert.InDelta(t, kind.Of(days[i].Totals.Rates()), got[i].Value, 1e-12)
			}
		})
	}
	assert.InDelta(t, 10, RateSeries(days, CaseFatality)[2].Value, 1e-9)
	assert.InDelta(t, 50, RateSeries(days, Recovery)[2].Value, 1e-9)
	assert.InDelta(t, 40, RateSeries(days, ActiveCases)[2].Value, 1e-9)
}

func TestParseRateKind(t *testing.T) {
	k, err := ParseRateKind("recovery")
	require.NoError(t, err)
	assert.Equal(t, Recovery, k)
	assert.Equal(t, "Recovery Rate", k.Title())

	_, err = ParseRateKind("mortality")
	assert.ErrorIs(t, err, domain.ErrInvalidChartKind)
}

func TestLatestRates(t *testing.T) {
	assert.Equal(t, domain.Rates{}, LatestRates(nil))
	assert.InDelta(t, 10, LatestRates(series(10, 1000)).CFR, 1e-9)
}

func TestLinearForecast(t *testing.T) {
	t.Run("linear series is reproduced", func(t *testing.T) {
		f, err := LinearForecast(series(10, 20, 30, 40, 50), 0, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, f.Window)
		assert.InDelta(t, 10, f.Slope, 1e-9)
		assert.InDelta(t, 10, f.Intercept, 1e-9)
		assert.InDelta(t, 1, f.RSquared, 1e-9)
		require.Len(t, f.Points, 3)
		assert.Equal(t, start.AddDate(0, 0, 5), f.Points[0].Date)
		assert.InDelta(t, 60, f.Points[0].Confirmed, 1e-9)
		assert.InDelta(t, 80, f.Points[2].Confirmed, 1e-9)
	})

	t.Run("window uses the most recent days", func(t *testing.T) {
		f, err := LinearForecast(series(1000, 0, 5, 10, 15), 3, 1)
		require.NoError(t, err)
		assert.Len(t, f.History, 3)
		assert.InDelta(t, 5, f.Slope, 1e-9)
		assert.InDelta(t, 20, f.Points[0].Confirmed, 1e-9)
	})

	t.Run("predictions are floored at zero", func(t *testing.T) {
		f, err := LinearForecast(series(30, 20, 10), 0, 5)
		require.NoError(t, err)
		for _, p := range f.Points {
			assert.GreaterOrEqual(t, p.Confirmed, 0.0)
		}
		assert.Zero(t, f.Points[4].Confirmed)
	})

	t.Run("constant series", func(t *testing.T) {
		f, err := LinearForecast(series(7, 7, 7), 0, 1)
		require.NoError(t, err)
		assert.InDelta(t, 0, f.Slope, 1e-9)
		assert.InDelta(t, 1, f.RSquared, 1e-9)
		assert.InDelta(t, 7, f.Points[0].Confirmed, 1e-9)
	})

	t.Run("too few days", func(t *testing.T) {
		_, err := LinearForecast(series(1), 0, 3)
		assert.ErrorIs(t, err, domain.ErrEmptySelection)
	})
}
