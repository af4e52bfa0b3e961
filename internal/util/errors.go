package util

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrAnswerNotFound = errors.New("answer not found")
)
