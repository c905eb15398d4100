package assignment

import "errors"

var (
	ErrNoDoctorsAvailable = errors.New("no doctors available for assignment")
	ErrPatientNotFound    = errors.New("patient not found")
	ErrNotAPatient        = errors.New("user is not a patient")
)
