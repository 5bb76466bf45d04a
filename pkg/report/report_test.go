package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func TestWrite(t *testing.T) {
	date := time.Date(2020, 1, 24, 0, 0, 0, 0, time.UTC)
	rows := []domain.Observation{
		{ProvinceState: "Hubei", CountryRegion: "China", Lat: 30.9756, Long: 112.2707, Date: date,
			Confirmed: 549, Deaths: 24, Recovered: 31, Active: 494, WHORegion: "Western Pacific"},
		{CountryRegion: "Italy", Date: date, Confirmed: 10, Deaths: 1, Recovered: 2, Active: 7, WHORegion: "Europe"},
	}
	days := []domain.DailyTotals{{Date: date, Totals: domain.Totals{Confirmed: 559, Deaths: 25, Recovered: 33, Active: 501}}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, rows, days))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetObservations, SheetDaily}, f.GetSheetList())

	obs, err := f.GetRows(SheetObservations)
	require.NoError(t, err)
	require.Len(t, obs, 3)
	assert.Equal(t, "Country/Region", obs[0][1])
	assert.Equal(t, "Hubei", obs[1][0])
	assert.Equal(t, "2020-01-24", obs[1][4])
	assert.Equal(t, "549", obs[1][5])
	assert.Equal(t, "10", obs[2][10])

	daily, err := f.GetRows(SheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "559", daily[1][1])
	assert.Equal(t, "4.47", daily[1][5])
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetDaily)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
