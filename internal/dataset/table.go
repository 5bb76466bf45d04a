package dataset

import (
	"sort"
	"time"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

// Table is an immutable in-memory slice of observations ordered by
// (date, country, province). Every filter returns a new Table.
type Table struct {
	rows []domain.Observation
}

func New(rows []domain.Observation) *Table {
	sorted := make([]domain.Observation, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.CountryRegion != b.CountryRegion {
			return a.CountryRegion < b.CountryRegion
		}
		return a.ProvinceState < b.ProvinceState
	})
	return &Table{rows: sorted}
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Rows() []domain.Observation {
	out := make([]domain.Observation, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table) Countries() []string {
	return t.unique(func(o domain.Observation) string { return o.CountryRegion })
}

func (t *Table) Regions() []string {
	return t.unique(func(o domain.Observation) string { return o.WHORegion })
}

func (t *Table) HasCountry(name string) bool {
	for _, o := range t.rows {
		if o.CountryRegion == name {
			return true
		}
	}
	return false
}

// DateRange returns the first and last observation dates; both are zero for an empty table.
func (t *Table) DateRange() (time.Time, time.Time) {
	if len(t.rows) == 0 {
		return time.Time{}, time.Time{}
	}
	return t.rows[0].Date, t.rows[len(t.rows)-1].Date
}

func (t *Table) FilterByCountry(name string) *Table {
	return t.filter(func(o domain.Observation) bool { return o.CountryRegion == name })
}

func (t *Table) FilterByRegion(whoRegion string) *Table {
	return t.filter(func(o domain.Observation) bool { return o.WHORegion == whoRegion })
}

// FilterByDateRange keeps rows with from <= date <= to. A zero bound is open.
func (t *Table) FilterByDateRange(from, to time.Time) *Table {
	return t.filter(func(o domain.Observation) bool {
		if !from.IsZero() && o.Date.Before(from) {
			return false
		}
		if !to.IsZero() && o.Date.After(to) {
			return false
		}
		return true
	})
}

// Latest returns the rows observed on the table's last date.
func (t *Table) Latest() *Table {
	_, last := t.DateRange()
	return t.filter(func(o domain.Observation) bool { return o.Date.Equal(last) })
}

func (t *Table) LatestTotals() domain.Totals {
	var total domain.Totals
	for _, o := range t.Latest().rows {
		total = total.Add(o.Totals())
	}
	return total
}

// GroupByDate sums every count per date, in date order.
func (t *Table) GroupByDate() []domain.DailyTotals {
	var out []domain.DailyTotals
	for _, o := range t.rows {
		if n := len(out); n > 0 && out[n-1].Date.Equal(o.Date) {
			out[n-1].Totals = out[n-1].Totals.Add(o.Totals())
			continue
		}
		out = append(out, domain.DailyTotals{Date: o.Date, Totals: o.Totals()})
	}
	return out
}

// GroupByRegion sums the latest-date counts per WHO region, ordered by region name.
func (t *Table) GroupByRegion() []domain.RegionTotals {
	byRegion := make(map[string]domain.Totals)
	for _, o := range t.Latest().rows {
		byRegion[o.WHORegion] = byRegion[o.WHORegion].Add(o.Totals())
	}
	out := make([]domain.RegionTotals, 0, len(byRegion))
	for region, totals := range byRegion {
		out = append(out, domain.RegionTotals{Region: region, Totals: totals})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out
}

func (t *Table) filter(keep func(domain.Observation) bool) *Table {
	var rows []domain.Observation
	for _, o := range t.rows {
		if keep(o) {
			rows = append(rows, o)
		}
	}
	return &Table{rows: rows}
}

func (t *Table) unique(key func(domain.Observation) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, o := range t.rows {
		k := key(o)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
