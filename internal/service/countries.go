package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type countryService struct {
	store          Snapshots
	defaultCountry string
}

func newCountryService(store Snapshots, defaultCountry string) *countryService {
	return &countryService{store: store, defaultCountry: defaultCountry}
}

func (s *countryService) List(context.Context) []string {
	return s.store.Table().Countries()
}

func (s *countryService) Default(context.Context) (string, error) {
	t := s.store.Table()
	if s.defaultCountry != "" && t.HasCountry(s.defaultCountry) {
		return s.defaultCountry, nil
	}
	countries := t.Countries()
	if len(countries) == 0 {
		return "", domain.ErrEmptySelection
	}
	return countries[0], nil
}

func (s *countryService) Analyze(ctx context.Context, country string, from, to time.Time) (*domain.CountryAnalysis, error) {
	country, rows, err := s.rows(ctx, country)
	if err != nil {
		return nil, err
	}
	rows = rows.FilterByDateRange(from, to)
	if rows.Len() == 0 {
		return nil, fmt.Errorf("%w: %s between %s and %s", domain.ErrEmptySelection, country, formatDate(from), formatDate(to))
	}

	_, asOf := rows.DateRange()
	trend := rows.GroupByDate()
	return &domain.CountryAnalysis{
		Country: country,
		AsOf:    asOf,
		Latest:  rows.LatestTotals(),
		Trend:   trend,
		Growth:  analysis.GrowthRates(trend),
		Rates:   analysis.LatestRates(trend),
	}, nil
}

// rows resolves an empty name to the default country and returns its observations.
func (s *countryService) rows(ctx context.Context, country string) (string, *dataset.Table, error) {
	if country == "" {
		var err error
		if country, err = s.Default(ctx); err != nil {
			return "", nil, err
		}
	}
	t := s.store.Table()
	if !t.HasCountry(country) {
		return "", nil, fmt.Errorf("%w: %q", domain.ErrUnknownCountry, country)
	}
	return country, t.FilterByCountry(country), nil
}

// next returns the country after name in sorted order, wrapping around.
func (s *countryService) next(name string) (string, error) {
	countries := s.store.Table().Countries()
	for i, c := range countries {
		if c != name {
			continue
		}
		if len(countries) < 2 {
			break
		}
		return countries[(i+1)%len(countries)], nil
	}
	return "", fmt.Errorf("%w: no second country for %q", domain.ErrSameCountry, name)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return t.Format(domain.DateLayout)
}
