package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/metrics"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/queue/task"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/logger"
	"github.com/kaustubh03-ks/covid-19-analysis/pkg/report"
)

// ExportPath is where the worker leaves the finished workbook for id.
func ExportPath(dir, id string) string {
	return filepath.Join(dir, id+".xlsx")
}

// jobTTL bounds how long a queued export is remembered without a result.
const jobTTL = 24 * time.Hour

type exportService struct {
	store Snapshots
	queue Enqueuer
	tasks TaskInspector
	dir   string

	mu   sync.RWMutex
	jobs map[string]domain.ExportJob
	now  func() time.Time
}

func newExportService(store Snapshots, queue Enqueuer, tasks TaskInspector, dir string) *exportService {
	return &exportService{
		store: store,
		queue: queue,
		tasks: tasks,
		dir:   dir,
		jobs:  make(map[string]domain.ExportJob),
		now:   time.Now,
	}
}

func (s *exportService) Table(_ context.Context, sel domain.Selection, w io.Writer) error {
	t, err := Select(s.store.Table(), sel)
	if err != nil {
		return err
	}
	if err := report.Write(w, t.Rows(), t.GroupByDate()); err != nil {
		return fmt.Errorf("export table: %w", err)
	}
	metrics.ExportsTotal.WithLabelValues("sync").Inc()
	return nil
}

func (s *exportService) Enqueue(ctx context.Context, sel domain.Selection) (*domain.ExportJob, error) {
	if s.queue == nil {
		return nil, domain.ErrQueueDisabled
	}
	// reject empty selections now rather than in the worker
	if _, err := Select(s.store.Table(), sel); err != nil {
		return nil, err
	}

	job := domain.ExportJob{
		ID:        uuid.NewString(),
		Status:    domain.ExportPending,
		Selection: sel,
		CreatedAt: s.now().UTC(),
	}
	t, err := task.NewExportTableTask(job.ID, sel)
	if err != nil {
		return nil, err
	}
	if _, err := s.queue.EnqueueContext(ctx, t); err != nil {
		return nil, fmt.Errorf("enqueue export: %w", err)
	}

	s.mu.Lock()
	s.prune(job.CreatedAt)
	s.jobs[job.ID] = job
	s.mu.Unlock()

	metrics.ExportsTotal.WithLabelValues("async").Inc()
	logger.Info("export queued", zap.String("id", job.ID))
	return &job, nil
}

func (s *exportService) Status(_ context.Context, id string) (*domain.ExportJob, string, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, "", fmt.Errorf("%w: export %q", domain.ErrNotFound, id)
	}

	s.mu.RLock()
	job, known := s.jobs[id]
	s.mu.RUnlock()
	if !known {
		job = domain.ExportJob{ID: id}
	}

	path := ExportPath(s.dir, id)
	_, err := os.Stat(path)
	switch {
	case err == nil:
		s.forget(id)
		job.Status = domain.ExportReady
		return &job, path, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, "", fmt.Errorf("stat export: %w", err)
	}

	if s.tasks != nil {
		info, err := s.tasks.GetTaskInfo(task.ExportTableQueueName, id)
		switch {
		case err == nil:
			job.Status = domain.ExportPending
			switch info.State {
			case asynq.TaskStateArchived:
				job.Status, job.Error = domain.ExportFailed, info.LastErr
			case asynq.TaskStateCompleted:
				job.Status, job.Error = domain.ExportFailed, "export file is missing"
			}
			if job.Status == domain.ExportFailed {
				s.forget(id)
			}
			return &job, "", nil
		case errors.Is(err, asynq.ErrTaskNotFound), errors.Is(err, asynq.ErrQueueNotFound):
			// the task was never queued or has been purged
		default:
			logger.Warn("export task lookup failed", zap.String("id", id), zap.Error(err))
		}
	}

	if known {
		return &job, "", nil
	}
	return nil, "", fmt.Errorf("%w: export %q", domain.ErrNotFound, id)
}

func (s *exportService) forget(id string) {
	s.mu.Lock()
	delete(s.jobs, id)
	s.mu.Unlock()
}

// prune drops jobs queued before now minus jobTTL. Callers hold s.mu.
func (s *exportService) prune(now time.Time) {
	for id, job := range s.jobs {
		if now.Sub(job.CreatedAt) > jobTTL {
			delete(s.jobs, id)
		}
	}
}

// Select applies a selection to t. An unknown country, a bad date or an empty
// result is an error.
func Select(t *dataset.Table, sel domain.Selection) (*dataset.Table, error) {
	if sel.Country != "" {
		if !t.HasCountry(sel.Country) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCountry, sel.Country)
		}
		t = t.FilterByCountry(sel.Country)
	}
	if sel.WHORegion != "" {
		t = t.FilterByRegion(sel.WHORegion)
	}

	var from, to time.Time
	var err error
	if sel.From != "" {
		if from, err = dataset.ParseDate(sel.From); err != nil {
			return nil, err
		}
	}
	if sel.To != "" {
		if to, err = dataset.ParseDate(sel.To); err != nil {
			return nil, err
		}
	}
	t = t.FilterByDateRange(from, to)

	if t.Len() == 0 {
		return nil, domain.ErrEmptySelection
	}
	return t, nil
}
