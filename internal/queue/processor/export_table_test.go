package processor

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/queue/task"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/worker"
)

type fakeExporter struct {
	err  error
	id   string
	sel  domain.Selection
	runs int
}

func (f *fakeExporter) ExportTable(_ context.Context, id string, sel domain.Selection) (string, error) {
	f.runs++
	f.id, f.sel = id, sel
	return "/tmp/" + id + ".xlsx", f.err
}

func TestExportTableProcessor(t *testing.T) {
	sel := domain.Selection{Country: "Italy"}
	tk, err := task.NewExportTableTask("e5f6", sel)
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		exp := &fakeExporter{}
		p := NewExportTableProcessor(&worker.Workers{Exporter: exp})
		require.NoError(t, p.ProcessTask(context.Background(), tk))
		assert.Equal(t, "e5f6", exp.id)
		assert.Equal(t, sel, exp.sel)
	})

	t.Run("selection gone skips retries", func(t *testing.T) {
		exp := &fakeExporter{err: domain.ErrEmptySelection}
		p := NewExportTableProcessor(&worker.Workers{Exporter: exp})
		err := p.ProcessTask(context.Background(), tk)
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("io errors are retried", func(t *testing.T) {
		exp := &fakeExporter{err: errors.New("disk full")}
		p := NewExportTableProcessor(&worker.Workers{Exporter: exp})
		err := p.ProcessTask(context.Background(), tk)
		require.Error(t, err)
		assert.NotErrorIs(t, err, asynq.SkipRetry)
	})

	t.Run("bad payload", func(t *testing.T) {
		p := NewExportTableProcessor(&worker.Workers{Exporter: &fakeExporter{}})
		err := p.ProcessTask(context.Background(), asynq.NewTask(task.ExportTableTaskName, []byte("{")))
		assert.ErrorIs(t, err, asynq.SkipRetry)
	})
}
