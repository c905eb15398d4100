package report

import "errors"

var (
	ErrReportNotFound  = errors.New("report not found")
	ErrNotYourReport   = errors.New("report belongs to another patient")
	ErrMissingFileName = errors.New("file name is required")
	ErrAlreadyRunning  = errors.New("report is already being processed")
)
