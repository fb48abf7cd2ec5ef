package utils

import "errors"

var (
	ErrPlaceNotFound   = errors.New("place not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")
	ErrAIUnavailable   = errors.New("ai provider unavailable")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
)
