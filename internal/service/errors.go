package service

import "errors"

var (
	ErrSampleNotFound    = errors.New("sample not found")
	ErrForbidden         = errors.New("forbidden")
	ErrReportEmpty       = errors.New("no samples to report")
	ErrUnknownReportView = errors.New("unknown report view")
)
