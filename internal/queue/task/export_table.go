package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

const (
	ExportTableTaskName  = "exportTableTask"
	ExportTableQueueName = "exportTableQueue"
)

type ExportTable struct {
	ID        string           `json:"id"`
	Selection domain.Selection `json:"selection"`
}

func NewExportTableTask(id string, sel domain.Selection) (*asynq.Task, error) {
	payload, err := json.Marshal(ExportTable{ID: id, Selection: sel})
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		ExportTableTaskName,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(ExportTableQueueName),
		asynq.TaskID(id),
	), nil
}
