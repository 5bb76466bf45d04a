package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	id             BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
	province_state VARCHAR(128) NOT NULL DEFAULT '',
	country_region VARCHAR(128) NOT NULL,
	lat            DOUBLE NOT NULL DEFAULT 0,
	lon            DOUBLE NOT NULL DEFAULT 0,
	observed_on    DATE NOT NULL,
	confirmed      BIGINT NOT NULL DEFAULT 0,
	deaths         BIGINT NOT NULL DEFAULT 0,
	recovered      BIGINT NOT NULL DEFAULT 0,
	active         BIGINT NOT NULL DEFAULT 0,
	who_region     VARCHAR(64) NOT NULL DEFAULT '',
	UNIQUE KEY uq_observation (country_region, province_state, observed_on),
	KEY idx_observed_on (observed_on)
);
`

type Observations interface {
	Source
	EnsureSchema(ctx context.Context) error
	// Replace swaps the stored rows for t inside one transaction.
	Replace(ctx context.Context, t *dataset.Table, batchSize int) (int, error)
}

type observationRepository struct {
	db *sqlx.DB
}

func NewObservationRepository(db *sqlx.DB) Observations {
	return &observationRepository{
		db: db,
	}
}

func (r *observationRepository) Name() string { return "mysql:observations" }

func (r *observationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create observations table failed: %w", err)
	}
	return nil
}

func (r *observationRepository) Load(ctx context.Context) (*dataset.Table, error) {
	const query = `
	SELECT province_state, country_region, lat, lon, observed_on, confirmed, deaths, recovered, active, who_region
	FROM observations;
	`
	var rows []domain.Observation
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select from observations failed: %w", err)
	}
	for i := range rows {
		rows[i].Date = calendarDay(rows[i].Date)
	}
	return dataset.New(rows), nil
}

func (r *observationRepository) Replace(ctx context.Context, t *dataset.Table, batchSize int) (int, error) {
	const insert = `
	INSERT INTO observations (province_state, country_region, lat, lon, observed_on, confirmed, deaths, recovered, active, who_region)
	VALUES (:province_state, :country_region, :lat, :lon, :observed_on, :confirmed, :deaths, :recovered, :active, :who_region)
	`
	if batchSize <= 0 {
		batchSize = 500
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM observations;`); err != nil {
		return 0, fmt.Errorf("clear observations failed: %w", err)
	}

	rows := insertRows(t.Rows())
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, insert, rows[start:end]); err != nil {
			return 0, fmt.Errorf("insert observations %d-%d failed: %w", start, end, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(rows), nil
}

// observationRow carries observed_on as text so the stored day does not depend on the
// driver's location.
type observationRow struct {
	ProvinceState string  `db:"province_state"`
	CountryRegion string  `db:"country_region"`
	Lat           float64 `db:"lat"`
	Long          float64 `db:"lon"`
	ObservedOn    string  `db:"observed_on"`
	Confirmed     int64   `db:"confirmed"`
	Deaths        int64   `db:"deaths"`
	Recovered     int64   `db:"recovered"`
	Active        int64   `db:"active"`
	WHORegion     string  `db:"who_region"`
}

func insertRows(obs []domain.Observation) []observationRow {
	out := make([]observationRow, len(obs))
	for i, o := range obs {
		out[i] = observationRow{
			ProvinceState: o.ProvinceState,
			CountryRegion: o.CountryRegion,
			Lat:           o.Lat,
			Long:          o.Long,
			ObservedOn:    o.Date.Format(domain.DateLayout),
			Confirmed:     o.Confirmed,
			Deaths:        o.Deaths,
			Recovered:     o.Recovered,
			Active:        o.Active,
			WHORegion:     o.WHORegion,
		}
	}
	return out
}

// calendarDay keeps the year, month and day of t as read and drops its zone.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
