package dataset

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

// Column names of the fixed input schema.
const (
	ColProvince  = "Province/State"
	ColCountry   = "Country/Region"
	ColLat       = "Lat"
	ColLong      = "Long"
	ColDate      = "Date"
	ColConfirmed = "Confirmed"
	ColDeaths    = "Deaths"
	ColRecovered = "Recovered"
	ColActive    = "Active"
	ColWHORegion = "WHO Region"
)

var Columns = []string{
	ColProvince, ColCountry, ColLat, ColLong, ColDate,
	ColConfirmed, ColDeaths, ColRecovered, ColActive, ColWHORegion,
}

var dateLayouts = []string{domain.DateLayout, "1/2/06", "1/2/2006"}

func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open dataset %s", path)
	}
	defer f.Close()

	t, err := LoadCSV(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %s", path)
	}
	return t, nil
}

// LoadCSV reads the fixed-schema CSV. Every column is read as text and converted here so
// that a bad cell reports its line instead of silently turning into NaN. The header is
// read as the first record so that a file with no data rows still loads.
func LoadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset")
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrapf(domain.ErrMissingColumn, "%q", Columns[0])
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
	)
	if df.Err != nil {
		return nil, errors.Wrap(domain.ErrMalformedValue, df.Err.Error())
	}

	names := df.Names()
	index := make(map[string]int, len(names))
	for i := range names {
		index[strings.TrimSpace(df.Elem(0, i).String())] = i
	}

	cols := make(map[string][]string, len(Columns))
	for _, c := range Columns {
		i, ok := index[c]
		if !ok {
			return nil, errors.Wrapf(domain.ErrMissingColumn, "%q", c)
		}
		cols[c] = df.Col(names[i]).Records()[1:]
	}

	rows := make([]domain.Observation, df.Nrow()-1)
	for i := range rows {
		// header is line 1
		p := cellParser{line: i + 2}
		rows[i] = domain.Observation{
			ProvinceState: cell(cols[ColProvince][i]),
			CountryRegion: cell(cols[ColCountry][i]),
			Lat:           p.float(ColLat, cols[ColLat][i]),
			Long:          p.float(ColLong, cols[ColLong][i]),
			Date:          p.date(cols[ColDate][i]),
			Confirmed:     p.count(ColConfirmed, cols[ColConfirmed][i]),
			Deaths:        p.count(ColDeaths, cols[ColDeaths][i]),
			Recovered:     p.count(ColRecovered, cols[ColRecovered][i]),
			Active:        p.count(ColActive, cols[ColActive][i]),
			WHORegion:     cell(cols[ColWHORegion][i]),
		}
		if p.err != nil {
			return nil, p.err
		}
	}

	return New(rows), nil
}

// cellParser keeps the first conversion error of a row.
type cellParser struct {
	line int
	err  error
}

func (p *cellParser) fail(col, raw string) {
	if p.err == nil {
		p.err = errors.Wrapf(domain.ErrMalformedValue, "line %d column %q value %q", p.line, col, raw)
	}
}

func (p *cellParser) float(col, raw string) float64 {
	s := cell(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		p.fail(col, raw)
		return 0
	}
	return v
}

func (p *cellParser) count(col, raw string) int64 {
	s := cell(raw)
	if s == "" {
		return 0
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	v, err := strconv.ParseFloat(s, 64)
	// the int64 conversion is undefined outside its range
	if err != nil || math.IsNaN(v) || v >= math.MaxInt64 || v < math.MinInt64 {
		p.fail(col, raw)
		return 0
	}
	return int64(math.Round(v))
}

func (p *cellParser) date(raw string) time.Time {
	d, err := ParseDate(cell(raw))
	if err != nil {
		p.fail(ColDate, raw)
	}
	return d
}

func cell(raw string) string {
	return strings.TrimSpace(raw)
}

// ParseDate parses a day in any layout accepted by the loader.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return d.UTC(), nil
		}
	}
	return time.Time{}, errors.Wrapf(domain.ErrMalformedValue, "date %q", s)
}
