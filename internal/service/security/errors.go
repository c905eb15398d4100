package security

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
)
