package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnknownCompetition    = errors.New("unknown competition")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
