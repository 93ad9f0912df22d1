package entity

import "errors"

var (
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrValidation           = errors.New("validation failed")
	ErrNotFound             = errors.New("not found")
)
