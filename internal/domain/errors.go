package domain

import "errors"

// ErrBelowThreshold is returned when a README scores under the required minimum.
var ErrBelowThreshold = errors.New("score below threshold")
