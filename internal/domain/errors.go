package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrUnknownTier     = errors.New("unknown tier")
	ErrInvalidMatch    = errors.New("invalid match data")
	ErrInvalidArgument = errors.New("invalid argument")
)
