package analysis

import "errors"

var (
	// ErrValidation marks input the gateway refuses before any model call.
	ErrValidation = errors.New("validation error")

	// ErrUpstreamInference marks a failed or unusable reply from a provider.
	ErrUpstreamInference = errors.New("upstream inference error")
)
