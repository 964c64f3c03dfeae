package engine

import "errors"

var (
	ErrInputAlignment     = errors.New("input series are not aligned")
	ErrEmptySeries        = errors.New("series is empty")
	ErrMissingPriceSeries = errors.New("no price series for instrument")
	ErrUnknownInstrument  = errors.New("instrument is not tracked")
	ErrInvalidConfig      = errors.New("invalid portfolio config")
)
