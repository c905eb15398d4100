package ai

import "errors"

var (
	ErrUnknownRisk     = errors.New("unknown risk level")
	ErrEmptyDocument   = errors.New("document text is empty")
	ErrProviderFailure = errors.New("analysis provider failure")
	ErrUnknownProvider = errors.New("unknown analysis provider")
	ErrMissingAPIKey   = errors.New("analysis provider api key missing")
	ErrMalformedAnswer = errors.New("provider returned malformed analysis")
)
