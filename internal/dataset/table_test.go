package dataset

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func loadSample(t *testing.T) *Table {
	t.Helper()
	tbl, err := LoadFile("testdata/covid_sample.csv")
	require.NoError(t, err)
	return tbl
}

func TestLoadCSV(t *testing.T) {
	t.Run("row count equals data rows", func(t *testing.T) {
		tbl := loadSample(t)
		assert.Equal(t, 15, tbl.Len())
	})

	t.Run("parses every column", func(t *testing.T) {
		tbl := loadSample(t).FilterByCountry("China").FilterByDateRange(day("2020-01-24"), time.Time{})
		rows := tbl.Rows()
		require.Len(t, rows, 2)
		hubei := rows[1]
		assert.Equal(t, "Hubei", hubei.ProvinceState)
		assert.Equal(t, "Western Pacific", hubei.WHORegion)
		assert.InDelta(t, 30.9756, hubei.Lat, 1e-9)
		assert.InDelta(t, 112.2707, hubei.Long, 1e-9)
		assert.Equal(t, day("2020-01-24"), hubei.Date)
		assert.Equal(t, domain.Totals{Confirmed: 549, Deaths: 24, Recovered: 31, Active: 494}, hubei.Totals())
	})

	t.Run("empty province and counts", func(t *testing.T) {
		in := strings.Join([]string{
			strings.Join(Columns, ","),
			",Chad,15.45,18.73,4/1/20,,,,,Africa",
		}, "\n")
		tbl, err := LoadCSV(strings.NewReader(in))
		require.NoError(t, err)
		rows := tbl.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, "", rows[0].ProvinceState)
		assert.Equal(t, day("2020-04-01"), rows[0].Date)
		assert.Equal(t, domain.Totals{}, rows[0].Totals())
	})

	t.Run("missing column", func(t *testing.T) {
		in := "Country/Region,Date,Confirmed\nItaly,2020-01-22,1\n"
		_, err := LoadCSV(strings.NewReader(in))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
		assert.Contains(t, err.Error(), "Province/State")
	})

	t.Run("malformed count names the line", func(t *testing.T) {
		for _, value := range []string{"many", "nan", "NaN", "1e30", "-1e30", "9223372036854775808"} {
			t.Run(value, func(t *testing.T) {
				in := strings.Join([]string{
					strings.Join(Columns, ","),
					",Italy,41.8,12.5,2020-01-22,1,0,0,1,Europe",
					",Italy,41.8,12.5,2020-01-23," + value + ",0,0,1,Europe",
				}, "\n")
				_, err := LoadCSV(strings.NewReader(in))
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrMalformedValue)
				assert.Contains(t, err.Error(), "line 3")
			})
		}
	})

	t.Run("negative and fractional counts", func(t *testing.T) {
		in := strings.Join([]string{
			strings.Join(Columns, ","),
			",Italy,41.8,12.5,2020-01-22,10.0,0,0,-3,Europe",
		}, "\n")
		tbl, err := LoadCSV(strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, domain.Totals{Confirmed: 10, Active: -3}, tbl.Rows()[0].Totals())
	})

	t.Run("header only", func(t *testing.T) {
		tbl, err := LoadCSV(strings.NewReader(strings.Join(Columns, ",") + "\n"))
		require.NoError(t, err)
		assert.Zero(t, tbl.Len())
		assert.Empty(t, tbl.Countries())
	})

	t.Run("header only still checks columns", func(t *testing.T) {
		_, err := LoadCSV(strings.NewReader("Country/Region,Date\n"))
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := LoadCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, domain.ErrMissingColumn)
	})

	t.Run("text cells are kept as written", func(t *testing.T) {
		in := strings.Join([]string{
			strings.Join(Columns, ","),
			"NA,Namibia,-22.9,18.4,2020-04-01,1,0,0,1,NA",
		}, "\n")
		tbl, err := LoadCSV(strings.NewReader(in))
		require.NoError(t, err)
		row := tbl.Rows()[0]
		assert.Equal(t, "NA", row.ProvinceState)
		assert.Equal(t, "NA", row.WHORegion)
	})

	t.Run("malformed date", func(t *testing.T) {
		in := strings.Join([]string{
			strings.Join(Columns, ","),
			",Italy,41.8,12.5,yesterday,1,0,0,1,Europe",
		}, "\n")
		_, err := LoadCSV(strings.NewReader(in))
		assert.ErrorIs(t, err, domain.ErrMalformedValue)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile("testdata/does_not_exist.csv")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does_not_exist.csv")
	})
}

func TestTableFilters(t *testing.T) {
	tbl := loadSample(t)

	t.Run("countries and regions are sorted and unique", func(t *testing.T) {
		assert.Equal(t, []string{"Afghanistan", "China", "Italy", "US"}, tbl.Countries())
		assert.Equal(t, []string{"Americas", "Eastern Mediterranean", "Europe", "Western Pacific"}, tbl.Regions())
		assert.True(t, tbl.HasCountry("Italy"))
		assert.False(t, tbl.HasCountry("Atlantis"))
	})

	t.Run("filter by country returns only matching rows", func(t *testing.T) {
		for _, country := range tbl.Countries() {
			filtered := tbl.FilterByCountry(country)
			require.NotZero(t, filtered.Len())
			for _, o := range filtered.Rows() {
				assert.Equal(t, country, o.CountryRegion)
			}
		}
		assert.Zero(t, tbl.FilterByCountry("Atlantis").Len())
	})

	t.Run("filter by region", func(t *testing.T) {
		filtered := tbl.FilterByRegion("Western Pacific")
		assert.Equal(t, 6, filtered.Len())
		assert.Equal(t, []string{"China"}, filtered.Countries())
	})

	t.Run("filter by date range is inclusive", func(t *testing.T) {
		cases := []struct {
			name     string
			from, to time.Time
			want     int
		}{
			{"single day", day("2020-01-23"), day("2020-01-23"), 5},
			{"open start", time.Time{}, day("2020-01-23"), 10},
			{"open end", day("2020-01-23"), time.Time{}, 10},
			{"both open", time.Time{}, time.Time{}, 15},
			{"outside", day("2021-01-01"), time.Time{}, 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, tbl.FilterByDateRange(tc.from, tc.to).Len())
			})
		}
	})

	t.Run("date range", func(t *testing.T) {
		from, to := tbl.DateRange()
		assert.Equal(t, day("2020-01-22"), from)
		assert.Equal(t, day("2020-01-24"), to)

		from, to = New(nil).DateRange()
		assert.True(t, from.IsZero())
		assert.True(t, to.IsZero())
	})

	t.Run("rows are a copy", func(t *testing.T) {
		rows := tbl.Rows()
		rows[0].Confirmed = 1_000_000
		assert.NotEqual(t, int64(1_000_000), tbl.Rows()[0].Confirmed)
	})
}

func TestTableAggregates(t *testing.T) {
	tbl := loadSample(t)

	t.Run("group by date sums rows", func(t *testing.T) {
		days := tbl.GroupByDate()
		require.Len(t, days, 3)
		assert.Equal(t, day("2020-01-22"), days[0].Date)
		assert.Equal(t, domain.Totals{Confirmed: 459, Deaths: 17, Recovered: 28, Active: 414}, days[0].Totals)
		assert.Equal(t, int64(471), days[1].Confirmed)
		assert.Equal(t, domain.Totals{Confirmed: 601, Deaths: 26, Recovered: 35, Active: 540}, days[2].Totals)
	})

	t.Run("latest totals", func(t *testing.T) {
		assert.Equal(t, 5, tbl.Latest().Len())
		assert.Equal(t, domain.Totals{Confirmed: 601, Deaths: 26, Recovered: 35, Active: 540}, tbl.LatestTotals())
	})

	t.Run("group by region uses the latest date", func(t *testing.T) {
		regions := tbl.GroupByRegion()
		require.Len(t, regions, 4)
		assert.Equal(t, "Americas", regions[0].Region)
		assert.Equal(t, int64(2), regions[0].Confirmed)
		assert.Equal(t, "Western Pacific", regions[3].Region)
		assert.Equal(t, domain.Totals{Confirmed: 585, Deaths: 24, Recovered: 32, Active: 529}, regions[3].Totals)
	})

	t.Run("empty table", func(t *testing.T) {
		empty := New(nil)
		assert.Empty(t, empty.GroupByDate())
		assert.Empty(t, empty.GroupByRegion())
		assert.Equal(t, domain.Totals{}, empty.LatestTotals())
	})
}
