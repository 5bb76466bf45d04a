package worker

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/config"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/service"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

type tableExporter struct {
	exports service.Exports
	config  config.Export
}

func newTableExporter(exports service.Exports, config config.Export) *tableExporter {
	return &tableExporter{
		exports: exports,
		config:  config,
	}
}

func (e *tableExporter) ExportTable(ctx context.Context, id string, sel domain.Selection) (string, error) {
	if err := os.MkdirAll(e.config.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir failed: %w", err)
	}

	path := service.ExportPath(e.config.Dir, id)
	// readers only ever see a finished file
	tmp, err := os.CreateTemp(e.config.Dir, id+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create export file failed: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := e.exports.Table(ctx, sel, tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write export failed: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file failed: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("publish export failed: %w", err)
	}

	logger.Info("export written", zap.String("id", id), zap.String("path", path))
	return path, nil
}
