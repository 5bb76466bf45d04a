package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type snapshot struct {
	table *dataset.Table
	info  domain.DatasetInfo
}

// Store holds the current dataset snapshot. Snapshots are never mutated;
// Reload builds a new one and swaps it in.
type Store struct {
	source  Source
	current atomic.Pointer[snapshot]
	reload  sync.Mutex
	version uint64
	now     func() time.Time
}

func NewStore(source Source) *Store {
	s := &Store{source: source, now: time.Now}
	s.current.Store(&snapshot{table: dataset.New(nil), info: domain.DatasetInfo{Source: source.Name()}})
	return s
}

func (s *Store) Reload(ctx context.Context) error {
	s.reload.Lock()
	defer s.reload.Unlock()

	t, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("reload dataset: %w", err)
	}

	s.version++
	from, to := t.DateRange()
	s.current.Store(&snapshot{
		table: t,
		info: domain.DatasetInfo{
			Source:    s.source.Name(),
			Rows:      t.Len(),
			Countries: len(t.Countries()),
			Regions:   len(t.Regions()),
			From:      from,
			To:        to,
			LoadedAt:  s.now().UTC(),
			Version:   s.version,
		},
	})
	return nil
}

func (s *Store) Table() *dataset.Table { return s.current.Load().table }

func (s *Store) Info() domain.DatasetInfo { return s.current.Load().info }
