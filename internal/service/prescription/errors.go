package prescription

import "errors"

var (
	ErrNotYourPatient = errors.New("patient is not under this doctor's care")
	ErrMissingTitle   = errors.New("prescription title is required")
)
