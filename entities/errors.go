package entities

import "errors"

var (
	ErrDuplicate  = errors.New("duplicate")
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
)
