package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/queue/task"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/worker"
)

type exportTableProcessor struct {
	workers *worker.Workers
}

func NewExportTableProcessor(workers *worker.Workers) *exportTableProcessor {
	return &exportTableProcessor{
		workers: workers,
	}
}

func (p *exportTableProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.ExportTable
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		return fmt.Errorf("process export table task json unmarshal failed: %w: %w", err, asynq.SkipRetry)
	}

	if _, err := p.workers.Exporter.ExportTable(ctx, data.ID, data.Selection); err != nil {
		// a reload can drop the selected rows; retrying will not bring them back
		if errors.Is(err, domain.ErrUnknownCountry) || errors.Is(err, domain.ErrEmptySelection) {
			return fmt.Errorf("export table %s failed: %w: %w", data.ID, err, asynq.SkipRetry)
		}
		return fmt.Errorf("export table %s failed: %w", data.ID, err)
	}

	return nil
}
