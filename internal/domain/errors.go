package domain

import "errors"

// Common errors
var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidID    = errors.New("invalid id format")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("access forbidden: you don't own this resource")
	ErrReadOnly     = errors.New("catalog is read-only: it is served from object storage")
)
