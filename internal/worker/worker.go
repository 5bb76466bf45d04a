package worker

import (
	"context"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
)

type Workers struct {
	Exporter Exporter
}

type Deps struct {
	Services *service.Services
	Config   *config.Config
}

type Exporter interface {
	// ExportTable writes the workbook for sel to the export directory and returns its path.
	ExportTable(ctx context.Context, id string, sel domain.Selection) (string, error)
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		Exporter: newTableExporter(deps.Services.Exports, deps.Config.Export),
	}
}
