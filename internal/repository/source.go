package repository

import (
	"context"
	"fmt"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
)

// Source produces a full dataset snapshot.
type Source interface {
	Name() string
	Load(ctx context.Context) (*dataset.Table, error)
}

type csvSource struct {
	path string
}

func NewCSVSource(path string) Source {
	return &csvSource{path: path}
}

func (s *csvSource) Name() string { return "csv:" + s.path }

func (s *csvSource) Load(ctx context.Context) (*dataset.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, err := dataset.LoadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("csv source: %w", err)
	}
	return t, nil
}

type staticSource struct {
	name  string
	table *dataset.Table
}

// NewStaticSource serves an already built table.
func NewStaticSource(name string, t *dataset.Table) Source {
	return &staticSource{name: name, table: t}
}

func (s *staticSource) Name() string { return s.name }

func (s *staticSource) Load(context.Context) (*dataset.Table, error) { return s.table, nil }
