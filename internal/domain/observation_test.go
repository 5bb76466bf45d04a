package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
		want     float64
	}{
		{"zero denominator", 5, 0, 0},
		{"negative denominator", 5, -3, 0},
		{"zero numerator", 0, 10, 0},
		{"half", 1, 2, 50},
		{"all", 7, 7, 100},
		{"fraction", 17, 444, 3.828828828828829},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Ratio(tc.num, tc.den), 1e-12)
		})
	}
}

func TestRatesStayWithinPercentRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		confirmed := r.Int63n(1_000_000)
		deaths := r.Int63n(confirmed + 1)
		recovered := r.Int63n(confirmed - deaths + 1)
		o := Observation{
			Confirmed: confirmed,
			Deaths:    deaths,
			Recovered: recovered,
			Active:    confirmed - deaths - recovered,
		}
		for _, v := range []float64{o.CFR(), o.RecoveryRate(), o.ActiveRatio()} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
		if confirmed == 0 {
			assert.Zero(t, o.CFR())
			continue
		}
		assert.InDelta(t, float64(deaths)/float64(confirmed)*100, o.CFR(), 1e-9)
		assert.InDelta(t, 100, o.CFR()+o.RecoveryRate()+o.ActiveRatio(), 1e-9)
	}
}

func TestTotalsRates(t *testing.T) {
	got := Totals{Confirmed: 200, Deaths: 10, Recovered: 150, Active: 40}.Rates()
	assert.Equal(t, Rates{CFR: 5, RecoveryRate: 75, ActiveRatio: 20}, got)
	assert.Equal(t, Rates{}, Totals{}.Rates())
}
