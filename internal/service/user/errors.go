package user

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidRole    = errors.New("role must be patient or doctor")
	ErrRoleAlreadySet = errors.New("role has already been selected")
	ErrInvalidPhone   = errors.New("phone number is invalid")
	ErrMissingEmail   = errors.New("email is required")
)
