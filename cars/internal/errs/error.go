package errs

import (
	"errors"
)

var (
	ErrMakeNotFound        = errors.New("requested make does not exist")
	ErrModelNotFound       = errors.New("requested model does not exist")
	ErrUpstreamUnreachable = errors.New("could not reach external API")
	ErrDuplicateCar        = errors.New("car with this make and model already exists")
	ErrCarNotFound         = errors.New("car not found")
	ErrInvalidRating       = errors.New("invalid rating")
	ErrValidation          = errors.New("validation failed")
)
