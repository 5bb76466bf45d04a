package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/analysis"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/cache"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/metrics"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

type chartService struct {
	store        Snapshots
	cache        cache.Charts
	overview     *overviewService
	countries    *countryService
	epidemiology *epidemiologyService
	forecasts    *forecastService
}

func newChartService(
	store Snapshots,
	charts cache.Charts,
	overview *overviewService,
	countries *countryService,
	epidemiology *epidemiologyService,
	forecasts *forecastService,
) *chartService {
	return &chartService{
		store:        store,
		cache:        charts,
		overview:     overview,
		countries:    countries,
		epidemiology: epidemiology,
		forecasts:    forecasts,
	}
}

func (s *chartService) Render(ctx context.Context, req ChartRequest) (*Image, error) {
	if req.Format == "" {
		req.Format = chart.PNG
	}
	key := cache.ChartKey(s.store.Info().Version,
		string(req.Kind), string(req.Format), req.Country, req.With,
		formatDate(req.From), formatDate(req.To), strconv.Itoa(req.Horizon),
	)

	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("chart cache get failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		metrics.ChartCacheHitsTotal.Inc()
		return &Image{Data: data, ContentType: req.Format.ContentType()}, nil
	}
	metrics.ChartCacheMissesTotal.Inc()

	data, err = s.render(ctx, req)
	if err != nil {
		return nil, err
	}
	metrics.ChartRendersTotal.WithLabelValues(string(req.Kind)).Inc()

	if err := s.cache.Set(ctx, key, data); err != nil {
		logger.Warn("chart cache set failed", zap.String("key", key), zap.Error(err))
	}
	return &Image{Data: data, ContentType: req.Format.ContentType()}, nil
}

func (s *chartService) render(ctx context.Context, req ChartRequest) ([]byte, error) {
	switch req.Kind {
	case chart.KindTrend:
		return s.trend(ctx, req)
	case chart.KindGrowth:
		return s.growth(ctx, req)
	case chart.KindCFR, chart.KindRecovery, chart.KindActive:
		return s.rate(ctx, req)
	case chart.KindRegions:
		return s.regions(ctx, req)
	case chart.KindCompareRates:
		return s.compareRates(ctx, req)
	case chart.KindCompareConfirmed:
		return s.compareConfirmed(ctx, req)
	case chart.KindForecast:
		return s.forecast(ctx, req)
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidChartKind, req.Kind)
}

// days returns the daily sums for a country, or for the world when country is empty.
func (s *chartService) days(ctx context.Context, req ChartRequest) (string, []domain.DailyTotals, error) {
	if req.Country == "" {
		t := s.store.Table().FilterByDateRange(req.From, req.To)
		if t.Len() == 0 {
			return "", nil, domain.ErrEmptySelection
		}
		return "", t.GroupByDate(), nil
	}
	a, err := s.countries.Analyze(ctx, req.Country, req.From, req.To)
	if err != nil {
		return "", nil, err
	}
	return a.Country, a.Trend, nil
}

func (s *chartService) trend(ctx context.Context, req ChartRequest) ([]byte, error) {
	country, days, err := s.days(ctx, req)
	if err != nil {
		return nil, err
	}
	title := "Global COVID-19 Trend"
	if country != "" {
		title = "COVID-19 Cases in " + country
	}
	dates, confirmed, deaths, recovered := splitTotals(days)
	return chart.RenderLines(chart.Lines{
		Title:  title,
		YLabel: "Number of Cases",
		Series: []chart.Series{
			{Name: "Confirmed", Color: chart.ColorConfirmed, Dates: dates, Values: confirmed},
			{Name: "Deaths", Color: chart.ColorDeaths, Dates: dates, Values: deaths},
			{Name: "Recovered", Color: chart.ColorRecovered, Dates: dates, Values: recovered},
		},
	}, req.Format)
}

func (s *chartService) growth(ctx context.Context, req ChartRequest) ([]byte, error) {
	country, days, err := s.days(ctx, req)
	if err != nil {
		return nil, err
	}
	series := chart.Series{Name: "Growth Rate", Color: chart.ColorGrowth}
	for _, p := range analysis.GrowthRates(days) {
		if !p.Valid {
			continue
		}
		series.Dates = append(series.Dates, p.Date)
		series.Values = append(series.Values, p.GrowthRate)
	}
	return chart.RenderLines(chart.Lines{
		Title:  "Daily Growth Rate of Confirmed Cases in " + placeName(country),
		YLabel: "Growth Rate (%)",
		Series: []chart.Series{series},
	}, req.Format)
}

func (s *chartService) rate(ctx context.Context, req ChartRequest) ([]byte, error) {
	kind, err := analysis.ParseRateKind(string(req.Kind))
	if err != nil {
		return nil, err
	}
	country, days, err := s.days(ctx, req)
	if err != nil {
		return nil, err
	}
	points := analysis.RateSeries(days, kind)
	series := chart.Series{Name: kind.Title(), Color: rateColor(kind)}
	for _, p := range points {
		series.Dates = append(series.Dates, p.Date)
		series.Values = append(series.Values, p.Value)
	}
	return chart.RenderLines(chart.Lines{
		Title:  fmt.Sprintf("%s Over Time in %s", kind.Title(), placeName(country)),
		YLabel: kind.Title() + " (%)",
		Series: []chart.Series{series},
	}, req.Format)
}

func (s *chartService) regions(ctx context.Context, req ChartRequest) ([]byte, error) {
	o, err := s.overview.Get(ctx)
	if err != nil {
		return nil, err
	}
	c := chart.Bars{
		Title:  "Regional Impact by WHO Region",
		YLabel: "Number of Cases",
		Groups: []chart.BarGroup{
			{Name: "Confirmed", Color: chart.ColorConfirmed},
			{Name: "Deaths", Color: chart.ColorDeaths},
			{Name: "Recovered", Color: chart.ColorRecovered},
		},
	}
	for _, r := range o.Regions {
		c.Categories = append(c.Categories, r.Region)
		c.Groups[0].Values = append(c.Groups[0].Values, float64(r.Confirmed))
		c.Groups[1].Values = append(c.Groups[1].Values, float64(r.Deaths))
		c.Groups[2].Values = append(c.Groups[2].Values, float64(r.Recovered))
	}
	return chart.RenderBars(c, req.Format)
}

func (s *chartService) compareRates(ctx context.Context, req ChartRequest) ([]byte, error) {
	cmp, err := s.epidemiology.Compare(ctx, req.Country, req.With)
	if err != nil {
		return nil, err
	}
	values := func(r domain.Rates) []float64 { return []float64{r.CFR, r.RecoveryRate, r.ActiveRatio} }
	return chart.RenderBars(chart.Bars{
		Title:  fmt.Sprintf("Epidemiological Comparison: %s vs %s", cmp.First.Country, cmp.Second.Country),
		YLabel: "Percentage (%)",
		Categories: []string{
			analysis.CaseFatality.Title(),
			analysis.Recovery.Title(),
			analysis.ActiveCases.Title(),
		},
		Groups: []chart.BarGroup{
			{Name: cmp.First.Country, Color: chart.ColorConfirmed, Values: values(cmp.First.Rates)},
			{Name: cmp.Second.Country, Color: chart.ColorDeaths, Values: values(cmp.Second.Rates)},
		},
	}, req.Format)
}

func (s *chartService) compareConfirmed(ctx context.Context, req ChartRequest) ([]byte, error) {
	cmp, err := s.epidemiology.Compare(ctx, req.Country, req.With)
	if err != nil {
		return nil, err
	}
	line := func(snap domain.CountrySnapshot, c chart.Series) chart.Series {
		c.Name = snap.Country
		c.Dates, c.Values, _, _ = splitTotals(snap.Confirmed)
		return c
	}
	return chart.RenderLines(chart.Lines{
		Title:  fmt.Sprintf("Confirmed Cases: %s vs %s", cmp.First.Country, cmp.Second.Country),
		YLabel: "Confirmed Cases",
		Series: []chart.Series{
			line(cmp.First, chart.Series{Color: chart.ColorConfirmed}),
			line(cmp.Second, chart.Series{Color: chart.ColorDeaths}),
		},
	}, req.Format)
}

func (s *chartService) forecast(ctx context.Context, req ChartRequest) ([]byte, error) {
	f, err := s.forecasts.Get(ctx, req.Country, req.Horizon)
	if err != nil {
		return nil, err
	}
	history := chart.Series{Name: "Confirmed", Color: chart.ColorConfirmed}
	history.Dates, history.Values, _, _ = splitTotals(f.History)

	projection := chart.Series{Name: "Forecast", Color: chart.ColorForecast, Dashed: true}
	// start the dashed line at the last observed point so the two lines join
	last := f.History[len(f.History)-1]
	projection.Dates = append(projection.Dates, last.Date)
	projection.Values = append(projection.Values, float64(last.Confirmed))
	for _, p := range f.Points {
		projection.Dates = append(projection.Dates, p.Date)
		projection.Values = append(projection.Values, p.Confirmed)
	}

	return chart.RenderLines(chart.Lines{
		Title:  "Confirmed Cases Forecast for " + placeName(f.Country),
		YLabel: "Confirmed Cases",
		Series: []chart.Series{history, projection},
	}, req.Format)
}
