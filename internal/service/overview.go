package service

import (
	"context"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type overviewService struct {
	store Snapshots
}

func newOverviewService(store Snapshots) *overviewService {
	return &overviewService{store: store}
}

func (s *overviewService) Get(context.Context) (*domain.Overview, error) {
	t := s.store.Table()
	if t.Len() == 0 {
		return nil, domain.ErrEmptySelection
	}
	_, asOf := t.DateRange()
	trend := t.GroupByDate()
	return &domain.Overview{
		AsOf:    asOf,
		Latest:  t.LatestTotals(),
		Trend:   trend,
		Regions: t.GroupByRegion(),
		Rates:   analysis.LatestRates(trend),
	}, nil
}
