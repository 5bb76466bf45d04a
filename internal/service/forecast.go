package service

import (
	"context"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type forecastService struct {
	store     Snapshots
	countries *countryService
	cfg       config.Forecast
}

func newForecastService(store Snapshots, countries *countryService, cfg config.Forecast) *forecastService {
	return &forecastService{store: store, countries: countries, cfg: cfg}
}

func (s *forecastService) Get(ctx context.Context, country string, horizon int) (*domain.Forecast, error) {
	switch {
	case horizon <= 0:
		horizon = s.cfg.Horizon
	case s.cfg.MaxDays > 0 && horizon > s.cfg.MaxDays:
		horizon = s.cfg.MaxDays
	}

	days := s.store.Table().GroupByDate()
	if country != "" {
		_, rows, err := s.countries.rows(ctx, country)
		if err != nil {
			return nil, err
		}
		days = rows.GroupByDate()
	}

	f, err := analysis.LinearForecast(days, s.cfg.Window, horizon)
	if err != nil {
		return nil, err
	}
	f.Country = country
	return &f, nil
}
