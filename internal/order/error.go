package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidStatus    = errors.New("unrecognized order status")
	ErrInvalidSignature = errors.New("invalid payment signature")
)
