package recommendation

import "errors"

var (
	ErrRecommendationNotFound = errors.New("recommendation not found")
	ErrNotActive              = errors.New("recommendation is not active")
	ErrNotYourReport          = errors.New("report belongs to another patient")
	ErrNotYourPatient         = errors.New("patient is not under this doctor's care")
	ErrNoAssignedDoctor       = errors.New("patient has no assigned doctor")
	ErrNotADoctor             = errors.New("target user is not a doctor")
	ErrForbidden              = errors.New("not allowed to act on this recommendation")
)
