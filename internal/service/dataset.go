package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/metrics"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
)

type datasetService struct {
	store Snapshots
}

func newDatasetService(store Snapshots) *datasetService {
	return &datasetService{store: store}
}

func (s *datasetService) Info(context.Context) domain.DatasetInfo {
	return s.store.Info()
}

func (s *datasetService) Reload(ctx context.Context) error {
	if err := s.store.Reload(ctx); err != nil {
		metrics.DatasetReloadsTotal.WithLabelValues("error").Inc()
		return err
	}
	info := s.store.Info()
	metrics.DatasetReloadsTotal.WithLabelValues("ok").Inc()
	metrics.DatasetRows.Set(float64(info.Rows))
	logger.Info("dataset loaded",
		zap.String("source", info.Source),
		zap.Int("rows", info.Rows),
		zap.Int("countries", info.Countries),
		zap.Uint64("version", info.Version),
	)
	return nil
}
