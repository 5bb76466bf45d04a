package service

import (
	"context"
	"io"
	"time"

	"github.com/hibiken/asynq"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/cache"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/chart"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type Services struct {
	Dataset      Dataset
	Overview     Overview
	Countries    Countries
	Epidemiology Epidemiology
	Forecasts    Forecasts
	Charts       Charts
	Exports      Exports
}

type Deps struct {
	Config     *config.Config
	Store      Snapshots
	ChartCache cache.Charts
	// Queue is nil when asynchronous exports are disabled.
	Queue Enqueuer
	// Tasks reports failed exports. Without it a failed export stays pending.
	Tasks TaskInspector
}

// Snapshots is the dataset holder, implemented by repository.Store.
type Snapshots interface {
	Table() *dataset.Table
	Info() domain.DatasetInfo
	Reload(ctx context.Context) error
}

type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskInspector is implemented by *asynq.Inspector.
type TaskInspector interface {
	GetTaskInfo(queue, id string) (*asynq.TaskInfo, error)
}

func NewServices(deps Deps) *Services {
	charts := deps.ChartCache
	if charts == nil {
		charts = cache.NewMemoryCharts(256)
	}

	datasets := newDatasetService(deps.Store)
	overview := newOverviewService(deps.Store)
	countries := newCountryService(deps.Store, deps.Config.Dataset.DefaultCountry)
	epidemiology := newEpidemiologyService(deps.Store, countries)
	forecasts := newForecastService(deps.Store, countries, deps.Config.Forecast)

	return &Services{
		Dataset:      datasets,
		Overview:     overview,
		Countries:    countries,
		Epidemiology: epidemiology,
		Forecasts:    forecasts,
		Charts:       newChartService(deps.Store, charts, overview, countries, epidemiology, forecasts),
		Exports:      newExportService(deps.Store, deps.Queue, deps.Tasks, deps.Config.Export.Dir),
	}
}

type Dataset interface {
	Info(ctx context.Context) domain.DatasetInfo
	Reload(ctx context.Context) error
}

type Overview interface {
	Get(ctx context.Context) (*domain.Overview, error)
}

type Countries interface {
	List(ctx context.Context) []string
	Default(ctx context.Context) (string, error)
	// Analyze falls back to Default when country is empty. Zero dates are open bounds.
	Analyze(ctx context.Context, country string, from, to time.Time) (*domain.CountryAnalysis, error)
}

type Epidemiology interface {
	Get(ctx context.Context, country string) (*domain.Epidemiology, error)
	Compare(ctx context.Context, first, second string) (*domain.Comparison, error)
}

type Forecasts interface {
	// Get forecasts the global series when country is empty.
	Get(ctx context.Context, country string, horizon int) (*domain.Forecast, error)
}

type ChartRequest struct {
	Kind    chart.Kind
	Format  chart.Format
	Country string
	With    string
	From    time.Time
	To      time.Time
	Horizon int
}

type Image struct {
	Data        []byte
	ContentType string
}

type Charts interface {
	Render(ctx context.Context, req ChartRequest) (*Image, error)
}

type Exports interface {
	Table(ctx context.Context, sel domain.Selection, w io.Writer) error
	Enqueue(ctx context.Context, sel domain.Selection) (*domain.ExportJob, error)
	// Status reports a queued export; the path is set once the file is ready.
	Status(ctx context.Context, id string) (*domain.ExportJob, string, error)
}
