package v1

import (
	"time"

	"github.com/kaustubh03-ks/covid-19-analysis/internal/dataset"
	"github.com/kaustubh03-ks/covid-19-analysis/internal/domain"
)

type dateRangeQuery struct {
	From string `form:"from" json:"from" binding:"omitempty,isodate"`
	To   string `form:"to" json:"to" binding:"omitempty,isodate"`
}

// bounds parses the already validated dates; empty values are open bounds.
func (q dateRangeQuery) bounds() (time.Time, time.Time, error) {
	var from, to time.Time
	var err error
	if q.From != "" {
		if from, err = dataset.ParseDate(q.From); err != nil {
			return from, to, err
		}
	}
	if q.To != "" {
		if to, err = dataset.ParseDate(q.To); err != nil {
			return from, to, err
		}
	}
	return from, to, nil
}

type selectionQuery struct {
	Country   string `form:"country" json:"country"`
	WHORegion string `form:"who_region" json:"who_region"`
	dateRangeQuery
}

func (q selectionQuery) selection() domain.Selection {
	return domain.Selection{Country: q.Country, WHORegion: q.WHORegion, From: q.From, To: q.To}
}
