package report

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid report date")
	ErrInvalidMonth = errors.New("invalid report month")
)
