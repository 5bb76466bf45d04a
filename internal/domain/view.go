package domain

import "time"

type GrowthPoint struct {
	Date       time.Time `json:"date"`
	Confirmed  int64     `json:"confirmed"`
	GrowthRate float64   `json:"growth_rate"`
	// Valid is false for the first day and for days following a zero count.
	Valid bool `json:"valid"`
}

type RatePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Confirmed float64   `json:"confirmed"`
}

type DatasetInfo struct {
	Source    string    `json:"source"`
	Rows      int       `json:"rows"`
	Countries int       `json:"countries"`
	Regions   int       `json:"regions"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	LoadedAt  time.Time `json:"loaded_at"`
	Version   uint64    `json:"version"`
}

type Overview struct {
	AsOf    time.Time      `json:"as_of"`
	Latest  Totals         `json:"latest"`
	Trend   []DailyTotals  `json:"trend"`
	Regions []RegionTotals `json:"regions"`
	Rates   Rates          `json:"rates"`
}

type CountryAnalysis struct {
	Country string        `json:"country"`
	AsOf    time.Time     `json:"as_of"`
	Latest  Totals        `json:"latest"`
	Trend   []DailyTotals `json:"trend"`
	Growth  []GrowthPoint `json:"growth"`
	Rates   Rates         `json:"rates"`
}

type Epidemiology struct {
	Country      string      `json:"country"`
	CFR          []RatePoint `json:"case_fatality_rate"`
	RecoveryRate []RatePoint `json:"recovery_rate"`
	ActiveRatio  []RatePoint `json:"active_case_ratio"`
	Latest       Rates       `json:"latest"`
}

type CountrySnapshot struct {
	Country   string        `json:"country"`
	Rates     Rates         `json:"rates"`
	Confirmed []DailyTotals `json:"trend"`
}

type Comparison struct {
	First  CountrySnapshot `json:"first"`
	Second CountrySnapshot `json:"second"`
}

type Forecast struct {
	Country   string          `json:"country,omitempty"`
	Window    int             `json:"window"`
	Slope     float64         `json:"slope"`
	Intercept float64         `json:"intercept"`
	RSquared  float64         `json:"r_squared"`
	History   []DailyTotals   `json:"history"`
	Points    []ForecastPoint `json:"points"`
}

// Selection narrows the table for exports and charts. Empty fields match everything.
type Selection struct {
	Country   string `json:"country,omitempty"`
	WHORegion string `json:"who_region,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
}

type ExportStatus string

const (
	ExportPending ExportStatus = "pending"
	ExportReady   ExportStatus = "ready"
	ExportFailed  ExportStatus = "failed"
)

type ExportJob struct {
	ID        string       `json:"id"`
	Status    ExportStatus `json:"status"`
	Selection Selection    `json:"selection"`
	CreatedAt time.Time    `json:"created_at"`
	// Error is the last worker error of a failed export.
	Error string `json:"error,omitempty"`
}
