package common

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrOverflow        = errors.New("arithmetic overflow")
	ErrDivisionByZero  = errors.New("division by zero")
)
