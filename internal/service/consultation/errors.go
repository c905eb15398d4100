package consultation

import "errors"

var (
	ErrMissingFields         = errors.New("doctor, date and time are required")
	ErrConsultationNotFound  = errors.New("consultation not found")
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrForbidden             = errors.New("not a party to this consultation")
	ErrInvalidStatus         = errors.New("invalid consultation status")
	ErrNotYourRecommendation = errors.New("recommendation belongs to another patient")
)
