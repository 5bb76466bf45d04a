package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrUnknownCountry   = errors.New("unknown country")
	ErrEmptySelection   = errors.New("selection has no observations")
	ErrInvalidChartKind = errors.New("invalid chart kind")
	ErrInvalidFormat    = errors.New("invalid chart format")
	ErrMissingColumn    = errors.New("missing column")
	ErrMalformedValue   = errors.New("malformed value")
	ErrSameCountry      = errors.New("cannot compare a country with itself")
	ErrQueueDisabled    = errors.New("export queue disabled")
)
