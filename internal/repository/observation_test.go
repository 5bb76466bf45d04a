package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

func TestCalendarDay(t *testing.T) {
	want := time.Date(2020, 1, 22, 0, 0, 0, 0, time.UTC)
	zones := []*time.Location{
		time.UTC,
		time.FixedZone("MSK", 3*60*60),
		time.FixedZone("EST", -5*60*60),
	}
	for _, loc := range zones {
		t.Run(loc.String(), func(t *testing.T) {
			// a DATE column scanned in loc
			read := time.Date(2020, 1, 22, 0, 0, 0, 0, loc)
			assert.Equal(t, want, calendarDay(read))
		})
	}
}

func TestInsertRows(t *testing.T) {
	obs := []domain.Observation{
		{
			CountryRegion: "Italy",
			Date:          time.Date(2020, 1, 22, 0, 0, 0, 0, time.UTC),
			Confirmed:     2,
			Active:        2,
			WHORegion:     "Europe",
		},
		{
			CountryRegion: "US",
			Date:          time.Date(2020, 1, 23, 0, 0, 0, 0, time.FixedZone("EST", -5*60*60)),
			Confirmed:     1,
		},
	}

	rows := insertRows(obs)
	require.Len(t, rows, 2)
	assert.Equal(t, "2020-01-22", rows[0].ObservedOn)
	assert.Equal(t, "Italy", rows[0].CountryRegion)
	assert.Equal(t, int64(2), rows[0].Active)
	assert.Equal(t, "2020-01-23", rows[1].ObservedOn)
}
