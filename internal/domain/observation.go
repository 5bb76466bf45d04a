package domain

import "time"

// DateLayout is the day-precision layout used by the dataset and the API.
const DateLayout = "2006-01-02"

type Observation struct {
	ProvinceState string    `db:"province_state" json:"province_state,omitempty"`
	CountryRegion string    `db:"country_region" json:"country_region"`
	Lat           float64   `db:"lat" json:"lat"`
	Long          float64   `db:"lon" json:"long"`
	Date          time.Time `db:"observed_on" json:"date"`
	Confirmed     int64     `db:"confirmed" json:"confirmed"`
	Deaths        int64     `db:"deaths" json:"deaths"`
	Recovered     int64     `db:"recovered" json:"recovered"`
	Active        int64     `db:"active" json:"active"`
	WHORegion     string    `db:"who_region" json:"who_region"`
}

func (o Observation) Totals() Totals {
	return Totals{
		Confirmed: o.Confirmed,
		Deaths:    o.Deaths,
		Recovered: o.Recovered,
		Active:    o.Active,
	}
}

func (o Observation) CFR() float64 { return Ratio(o.Deaths, o.Confirmed) }

func (o Observation) RecoveryRate() float64 { return Ratio(o.Recovered, o.Confirmed) }

func (o Observation) ActiveRatio() float64 { return Ratio(o.Active, o.Confirmed) }

type Totals struct {
	Confirmed int64 `json:"confirmed"`
	Deaths    int64 `json:"deaths"`
	Recovered int64 `json:"recovered"`
	Active    int64 `json:"active"`
}

func (t Totals) Add(o Totals) Totals {
	return Totals{
		Confirmed: t.Confirmed + o.Confirmed,
		Deaths:    t.Deaths + o.Deaths,
		Recovered: t.Recovered + o.Recovered,
		Active:    t.Active + o.Active,
	}
}

// Rates returns CFR, recovery rate and active ratio of t, all as percentages of confirmed.
func (t Totals) Rates() Rates {
	return Rates{
		CFR:          Ratio(t.Deaths, t.Confirmed),
		RecoveryRate: Ratio(t.Recovered, t.Confirmed),
		ActiveRatio:  Ratio(t.Active, t.Confirmed),
	}
}

type Rates struct {
	CFR          float64 `json:"case_fatality_rate"`
	RecoveryRate float64 `json:"recovery_rate"`
	ActiveRatio  float64 `json:"active_case_ratio"`
}

type DailyTotals struct {
	Date time.Time `json:"date"`
	Totals
}

type RegionTotals struct {
	Region string `json:"region"`
	Totals
}

// Ratio is numerator/denominator*100, or 0 when the denominator is not positive.
func Ratio(numerator, denominator int64) float64 {
	if denominator <= 0 {
		return 0
	}
	return float64(numerator) / float64(denominator) * 100
}
