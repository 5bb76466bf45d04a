package service

import (
	"context"
	"fmt"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type epidemiologyService struct {
	store     Snapshots
	countries *countryService
}

func newEpidemiologyService(store Snapshots, countries *countryService) *epidemiologyService {
	return &epidemiologyService{store: store, countries: countries}
}

func (s *epidemiologyService) Get(ctx context.Context, country string) (*domain.Epidemiology, error) {
	country, rows, err := s.countries.rows(ctx, country)
	if err != nil {
		return nil, err
	}
	days := rows.GroupByDate()
	return &domain.Epidemiology{
		Country:      country,
		CFR:          analysis.RateSeries(days, analysis.CaseFatality),
		RecoveryRate: analysis.RateSeries(days, analysis.Recovery),
		ActiveRatio:  analysis.RateSeries(days, analysis.ActiveCases),
		Latest:       analysis.LatestRates(days),
	}, nil
}

func (s *epidemiologyService) Compare(ctx context.Context, first, second string) (*domain.Comparison, error) {
	first, a, err := s.countries.rows(ctx, first)
	if err != nil {
		return nil, err
	}
	if second == "" {
		if second, err = s.countries.next(first); err != nil {
			return nil, err
		}
	}
	if second == first {
		return nil, fmt.Errorf("%w: %q", domain.ErrSameCountry, first)
	}
	second, b, err := s.countries.rows(ctx, second)
	if err != nil {
		return nil, err
	}

	snapshot := func(name string, days []domain.DailyTotals) domain.CountrySnapshot {
		return domain.CountrySnapshot{Country: name, Rates: analysis.LatestRates(days), Confirmed: days}
	}
	return &domain.Comparison{
		First:  snapshot(first, a.GroupByDate()),
		Second: snapshot(second, b.GroupByDate()),
	}, nil
}
